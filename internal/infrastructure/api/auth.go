package api

import (
	"context"
	"net/http"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/session"
)

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new customer account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RefreshToken exchanges the refresh token for a new access token
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", body, &result); err != nil {
		return "", err
	}
	return result.AccessToken, nil
}

// UpdateProfile updates the authenticated user's editable identity fields
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*session.User, error) {
	var result struct {
		User *session.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", update, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}
