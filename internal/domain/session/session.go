package session

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies an authenticated user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is the identity record of the authenticated user
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds the authenticated identity and its tokens.
// All fields are empty when logged out.
type Session struct {
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// New creates an empty, unauthenticated session
func New() *Session {
	return &Session{}
}

// IsAuthenticated is true iff the identity and both tokens are present
func (s *Session) IsAuthenticated() bool {
	return s.User != nil && s.AccessToken != "" && s.RefreshToken != ""
}

// SetAuth replaces the identity and both tokens atomically
func (s *Session) SetAuth(user *User, accessToken, refreshToken string) {
	s.User = user
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
}

// SetUser replaces the identity only, leaving tokens untouched
func (s *Session) SetUser(user *User) {
	s.User = user
}

// UpdateAccessToken replaces the access token only
func (s *Session) UpdateAccessToken(token string) {
	s.AccessToken = token
}

// Clear removes the identity and both tokens. Idempotent.
func (s *Session) Clear() {
	s.User = nil
	s.AccessToken = ""
	s.RefreshToken = ""
}
