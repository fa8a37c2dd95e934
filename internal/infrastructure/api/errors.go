package api

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable wraps transport-level failures reaching the backend
var ErrBackendUnavailable = errors.New("api: backend unavailable")

// Error is a rejected request returned by the backend (bad credentials,
// validation failure, conflict). It is surfaced verbatim to the caller.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (%s, HTTP %d)", e.Message, e.Code, e.Status)
}

// IsAuthError reports whether the backend rejected the credentials
func (e *Error) IsAuthError() bool {
	return e.Status == 401 || e.Status == 403
}

// AsError extracts an *Error from err, if one is wrapped inside
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
