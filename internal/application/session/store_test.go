package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/state"
)

type fakeAuthAPI struct {
	loginResult   *api.AuthResult
	loginErr      error
	registerReq   api.RegisterRequest
	refreshToken  string
	refreshResult string
	refreshErr    error
	profileResult *session.User
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	f.registerReq = req
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	f.refreshToken = refreshToken
	return f.refreshResult, f.refreshErr
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*session.User, error) {
	return f.profileResult, nil
}

func testUser() *session.User {
	return &session.User{
		ID:    uuid.New(),
		Name:  "Ayşe Yılmaz",
		Email: "ayse@example.com",
		Role:  session.RoleCustomer,
	}
}

func newTestStore(t *testing.T, auth AuthAPI) (*Store, state.SnapshotStore) {
	t.Helper()
	snapshots := state.NewMemoryStore()
	store := NewStore(context.Background(), snapshots, zap.NewNop())
	store.SetAuthAPI(auth)
	return store, snapshots
}

func TestStore_Login(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{loginResult: &api.AuthResult{
		User:         user,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}}
	store, snapshots := newTestStore(t, auth)

	got, err := store.Login(context.Background(), "ayse@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-1", store.AccessToken())

	data, found, err := snapshots.Load(context.Background(), state.SessionKey)
	require.NoError(t, err)
	require.True(t, found)
	var persisted session.Session
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "refresh-1", persisted.RefreshToken)
}

func TestStore_LoginFailureLeavesStateUnchanged(t *testing.T) {
	auth := &fakeAuthAPI{loginErr: &api.Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "invalid credentials"}}
	store, _ := newTestStore(t, auth)

	_, err := store.Login(context.Background(), "ayse@example.com", "wrong")
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestStore_RegisterSignsIn(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{loginResult: &api.AuthResult{
		User:         user,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}}
	store, _ := newTestStore(t, auth)

	_, err := store.Register(context.Background(), user.Name, user.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Email, auth.registerReq.Email)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{loginResult: &api.AuthResult{
		User:         user,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}}
	store, snapshots := newTestStore(t, auth)
	_, err := store.Login(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	store.Logout(context.Background())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, store.AccessToken())

	// the cleared state is what survives a restart
	restarted := NewStore(context.Background(), snapshots, zap.NewNop())
	assert.False(t, restarted.IsAuthenticated())
}

func TestStore_LogoutWhenLoggedOut(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuthAPI{})
	store.Logout(context.Background())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_RehydratesAcrossRestart(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{loginResult: &api.AuthResult{
		User:         user,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}}
	store, snapshots := newTestStore(t, auth)
	_, err := store.Login(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	restarted := NewStore(context.Background(), snapshots, zap.NewNop())
	assert.True(t, restarted.IsAuthenticated())
	require.NotNil(t, restarted.User())
	assert.Equal(t, user.Email, restarted.User().Email)
	assert.Equal(t, "access-1", restarted.AccessToken())
}

func TestStore_CorruptSnapshotFallsBackToDefaults(t *testing.T) {
	snapshots := state.NewMemoryStore()
	require.NoError(t, snapshots.Save(context.Background(), state.SessionKey, []byte("{not json")))

	store := NewStore(context.Background(), snapshots, zap.NewNop())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestStore_Refresh(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{
		loginResult:   &api.AuthResult{User: user, AccessToken: "access-1", RefreshToken: "refresh-1"},
		refreshResult: "access-2",
	}
	store, _ := newTestStore(t, auth)
	_, err := store.Login(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, "refresh-1", auth.refreshToken)
	assert.Equal(t, "access-2", store.AccessToken())
}

func TestStore_RefreshFailureKeepsToken(t *testing.T) {
	user := testUser()
	auth := &fakeAuthAPI{
		loginResult: &api.AuthResult{User: user, AccessToken: "access-1", RefreshToken: "refresh-1"},
		refreshErr:  errors.New("backend down"),
	}
	store, _ := newTestStore(t, auth)
	_, err := store.Login(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	require.Error(t, store.Refresh(context.Background()))
	assert.Equal(t, "access-1", store.AccessToken())
}

func TestStore_NeedsRefresh(t *testing.T) {
	signed := func(expiresIn time.Duration) string {
		claims := jwt.MapClaims{"exp": time.Now().Add(expiresIn).Unix()}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return s
	}

	user := testUser()
	store, _ := newTestStore(t, &fakeAuthAPI{})
	assert.False(t, store.NeedsRefresh(time.Minute), "logged out session never needs refresh")

	store.SetAuth(context.Background(), user, signed(time.Hour), "refresh-1")
	assert.False(t, store.NeedsRefresh(time.Minute))

	store.UpdateAccessToken(context.Background(), signed(30*time.Second))
	assert.True(t, store.NeedsRefresh(time.Minute))
}

func TestStore_UpdateProfile(t *testing.T) {
	user := testUser()
	updated := *user
	updated.Name = "Ayşe Demir"
	auth := &fakeAuthAPI{
		loginResult:   &api.AuthResult{User: user, AccessToken: "access-1", RefreshToken: "refresh-1"},
		profileResult: &updated,
	}
	store, _ := newTestStore(t, auth)
	_, err := store.Login(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	name := "Ayşe Demir"
	got, err := store.UpdateProfile(context.Background(), api.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Demir", got.Name)
	assert.Equal(t, "Ayşe Demir", store.User().Name)
	assert.Equal(t, "access-1", store.AccessToken(), "profile update must not touch tokens")
}

func TestStore_UserReturnsCopy(t *testing.T) {
	user := testUser()
	store, _ := newTestStore(t, &fakeAuthAPI{})
	store.SetUser(context.Background(), user)

	got := store.User()
	got.Name = "mutated"
	assert.NotEqual(t, "mutated", store.User().Name)
}
