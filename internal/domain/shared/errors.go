package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotAuthenticated     = NewDomainError("NOT_AUTHENTICATED", "No authenticated session")
	ErrInvalidPaymentMethod = NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	ErrEmptyCart            = NewDomainError("EMPTY_CART", "Cart has no items")
)
