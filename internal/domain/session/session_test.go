package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testUser() *User {
	return &User{
		ID:        uuid.New(),
		Name:      "Ayşe Yılmaz",
		Email:     "ayse@example.com",
		Role:      RoleCustomer,
		Phone:     "+90 555 000 00 00",
		CreatedAt: time.Now(),
	}
}

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role    Role
		isValid bool
	}{
		{RoleCustomer, true},
		{RoleAdmin, true},
		{Role("manager"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.role.IsValid())
		})
	}
}

func TestSession_NewIsUnauthenticated(t *testing.T) {
	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User)
	assert.Empty(t, s.AccessToken)
	assert.Empty(t, s.RefreshToken)
}

func TestSession_SetAuth(t *testing.T) {
	s := New()
	user := testUser()
	s.SetAuth(user, "access", "refresh")

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, user, s.User)
	assert.Equal(t, "access", s.AccessToken)
	assert.Equal(t, "refresh", s.RefreshToken)
}

func TestSession_IsAuthenticated_RequiresAllFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantYes bool
	}{
		{"all present", func(s *Session) {}, true},
		{"missing user", func(s *Session) { s.User = nil }, false},
		{"missing access token", func(s *Session) { s.AccessToken = "" }, false},
		{"missing refresh token", func(s *Session) { s.RefreshToken = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetAuth(testUser(), "access", "refresh")
			tt.mutate(s)
			assert.Equal(t, tt.wantYes, s.IsAuthenticated())
		})
	}
}

func TestSession_SetUser_KeepsTokens(t *testing.T) {
	s := New()
	s.SetAuth(testUser(), "access", "refresh")

	updated := testUser()
	updated.Name = "Updated Name"
	s.SetUser(updated)

	assert.Equal(t, "Updated Name", s.User.Name)
	assert.Equal(t, "access", s.AccessToken)
	assert.Equal(t, "refresh", s.RefreshToken)
}

func TestSession_UpdateAccessToken(t *testing.T) {
	s := New()
	s.SetAuth(testUser(), "old", "refresh")
	s.UpdateAccessToken("new")

	assert.Equal(t, "new", s.AccessToken)
	assert.Equal(t, "refresh", s.RefreshToken)
}

func TestSession_Clear(t *testing.T) {
	s := New()
	s.SetAuth(testUser(), "access", "refresh")

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User)
	assert.Empty(t, s.AccessToken)
	assert.Empty(t, s.RefreshToken)

	// Idempotent
	s.Clear()
	assert.False(t, s.IsAuthenticated())
}
