// Package session implements the session store: the authenticated
// identity and token state for the current shopper, persisted across
// restarts.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/state"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/token"
)

// AuthAPI is the backend surface the session store depends on
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*session.User, error)
}

// Store holds the current session and persists it on every mutation.
//
// Login and Register perform their network call outside the lock; when
// two such calls overlap, the last response to arrive wins. There is no
// de-duplication or cancellation of superseded calls.
type Store struct {
	mu        sync.RWMutex
	session   *session.Session
	auth      AuthAPI
	snapshots state.SnapshotStore
	logger    *zap.Logger
}

// NewStore creates a session store, rehydrating from persisted state.
// A missing or corrupt snapshot yields the default logged-out session.
func NewStore(ctx context.Context, snapshots state.SnapshotStore, logger *zap.Logger) *Store {
	s := &Store{
		session:   session.New(),
		snapshots: snapshots,
		logger:    logger,
	}
	s.rehydrate(ctx)
	return s
}

// SetAuthAPI sets the backend client used by Login, Register, Refresh
// and UpdateProfile
func (s *Store) SetAuthAPI(auth AuthAPI) {
	s.auth = auth
}

func (s *Store) rehydrate(ctx context.Context) {
	data, found, err := s.snapshots.Load(ctx, state.SessionKey)
	if err != nil {
		s.logger.Warn("Failed to load session snapshot", zap.Error(err))
		return
	}
	if !found {
		return
	}
	restored := session.New()
	if err := json.Unmarshal(data, restored); err != nil {
		s.logger.Warn("Discarding corrupt session snapshot", zap.Error(err))
		return
	}
	s.session = restored
}

// persist saves the current snapshot; failures are logged, never returned
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		s.logger.Error("Failed to encode session snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(ctx, state.SessionKey, data); err != nil {
		s.logger.Error("Failed to save session snapshot", zap.Error(err))
	}
}

// Login authenticates against the backend and replaces the session state
// on success. On failure the session is left unchanged and the error is
// returned verbatim for the caller to display.
func (s *Store) Login(ctx context.Context, email, password string) (*session.User, error) {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetAuth(result.User, result.AccessToken, result.RefreshToken)
	s.persist(ctx)
	return result.User, nil
}

// Register creates a customer account and signs the new user in
func (s *Store) Register(ctx context.Context, name, email, password string) (*session.User, error) {
	result, err := s.auth.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetAuth(result.User, result.AccessToken, result.RefreshToken)
	s.persist(ctx)
	return result.User, nil
}

// SetAuth replaces the identity and both tokens directly, used after
// out-of-band flows such as a password reset redirect
func (s *Store) SetAuth(ctx context.Context, user *session.User, accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetAuth(user, accessToken, refreshToken)
	s.persist(ctx)
}

// SetUser replaces the identity only, leaving tokens untouched
func (s *Store) SetUser(ctx context.Context, user *session.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetUser(user)
	s.persist(ctx)
}

// UpdateAccessToken replaces the access token after a silent refresh
func (s *Store) UpdateAccessToken(ctx context.Context, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.UpdateAccessToken(accessToken)
	s.persist(ctx)
}

// UpdateProfile pushes the edit to the backend, then replaces the local
// identity with the returned record
func (s *Store) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*session.User, error) {
	user, err := s.auth.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	s.SetUser(ctx, user)
	return user, nil
}

// Refresh exchanges the refresh token for a new access token
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.session.RefreshToken
	s.mu.RUnlock()

	accessToken, err := s.auth.RefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	s.UpdateAccessToken(ctx, accessToken)
	return nil
}

// NeedsRefresh reports whether the access token expires within the given
// window. Always false when logged out.
func (s *Store) NeedsRefresh(window time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.IsAuthenticated() {
		return false
	}
	return token.ExpiresWithin(s.session.AccessToken, window)
}

// Logout clears the identity and both tokens unconditionally. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Clear()
	s.persist(ctx)
}

// IsAuthenticated reports whether a user is signed in
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated()
}

// User returns a copy of the current identity, or nil when logged out
func (s *Store) User() *session.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return nil
	}
	user := *s.session.User
	return &user
}

// AccessToken returns the current access token. This makes the store an
// api.TokenSource for the backend client.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.AccessToken
}
