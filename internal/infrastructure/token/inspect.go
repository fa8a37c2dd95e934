// Package token inspects backend-issued JWTs on the client side. The
// backend verifies signatures; the storefront only reads the expiry
// claim to schedule silent refreshes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors
var (
	ErrMalformedToken = errors.New("token: malformed token")
	ErrNoExpiryClaim  = errors.New("token: no expiry claim")
)

// ExpiresAt returns the expiry time of the token without verifying its
// signature.
func ExpiresAt(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, ErrMalformedToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}
	return exp.Time, nil
}

// ExpiresWithin reports whether the token expires within the given window.
// Malformed tokens and tokens without an expiry claim count as expiring,
// so callers err on the side of refreshing.
func ExpiresWithin(tokenString string, window time.Duration) bool {
	expiry, err := ExpiresAt(tokenString)
	if err != nil {
		return true
	}
	return time.Until(expiry) < window
}
