package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krish230803/Ai-Interview-System/internal/api"
)

// fakeBackend counts calls so tests can assert that validation
// failures never reach the network.
type fakeBackend struct {
	calls int

	loginUser *api.User
	loginErr  error
	meUser    *api.User
	meErr     error
	resetURL  string
	logoutErr error
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (*api.User, error) {
	f.calls++
	return f.loginUser, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, _, _, _ string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) ForgotPassword(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.resetURL, nil
}

func (f *fakeBackend) ResetPassword(_ context.Context, _, _ string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) Me(_ context.Context) (*api.User, error) {
	f.calls++
	return f.meUser, f.meErr
}

func (f *fakeBackend) Logout(_ context.Context) error {
	f.calls++
	return f.logoutErr
}

type memCache struct {
	user    *api.User
	pending string
}

func (m *memCache) SaveUser(u *api.User) error { m.user = u; return nil }
func (m *memCache) LoadUser() (*api.User, error) {
	return m.user, nil
}
func (m *memCache) ClearUser() error              { m.user = nil; return nil }
func (m *memCache) SavePendingTarget(v string) error { m.pending = v; return nil }
func (m *memCache) TakePendingTarget() (string, error) {
	v := m.pending
	m.pending = ""
	return v, nil
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	ctrl := NewController(backend, &memCache{}, nil)

	_, _, err := ctrl.Login(context.Background(), "", "secret")
	require.ErrorIs(t, err, ErrMissingFields)

	_, _, err = ctrl.Login(context.Background(), "a@b.com", "")
	require.ErrorIs(t, err, ErrMissingFields)

	require.Equal(t, 0, backend.calls, "validation failures must not call the server")
}

func TestLoginCachesUserAndResumesTarget(t *testing.T) {
	backend := &fakeBackend{loginUser: &api.User{Name: "Jane", Email: "jane@example.com"}}
	cache := &memCache{pending: "interview"}
	ctrl := NewController(backend, cache, nil)

	user, target, err := ctrl.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Jane", user.Name)
	require.Equal(t, "interview", target, "login should resume the saved view")
	require.NotNil(t, cache.user)
	require.Empty(t, cache.pending, "pending target is consumed on login")
}

func TestRegisterValidation(t *testing.T) {
	backend := &fakeBackend{}
	ctrl := NewController(backend, &memCache{}, nil)
	ctx := context.Background()

	err := ctrl.Register(ctx, "Jane", "jane@example.com", "password1", "password2")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	err = ctrl.Register(ctx, "Jane", "jane@example.com", "short", "short")
	require.ErrorIs(t, err, ErrPasswordTooShort)

	err = ctrl.Register(ctx, "", "jane@example.com", "password1", "password1")
	require.ErrorIs(t, err, ErrMissingFields)

	require.Equal(t, 0, backend.calls)

	err = ctrl.Register(ctx, "Jane", "jane@example.com", "password1", "password1")
	require.NoError(t, err)
	require.Equal(t, 1, backend.calls)
}

func TestForgotPasswordReturnsDevResetURL(t *testing.T) {
	backend := &fakeBackend{resetURL: "http://localhost:5000/auth/reset-password/tok123"}
	ctrl := NewController(backend, &memCache{}, nil)

	instr, err := ctrl.ForgotPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, backend.resetURL, instr.ResetURL)
}

func TestCheckAuthClearsCacheOnFailure(t *testing.T) {
	backend := &fakeBackend{meErr: api.ErrUnauthorized}
	cache := &memCache{user: &api.User{Name: "Stale"}}
	ctrl := NewController(backend, cache, nil)

	user := ctrl.CheckAuth(context.Background())
	require.Nil(t, user)
	require.Nil(t, cache.user, "failed check must clear the stale cache")
}

func TestLogoutKeepsCacheOnServerError(t *testing.T) {
	backend := &fakeBackend{logoutErr: errors.New("boom")}
	cache := &memCache{user: &api.User{Name: "Jane"}}
	ctrl := NewController(backend, cache, nil)

	err := ctrl.Logout(context.Background())
	require.Error(t, err)
	require.NotNil(t, cache.user, "cache must survive a failed logout")

	backend.logoutErr = nil
	require.NoError(t, ctrl.Logout(context.Background()))
	require.Nil(t, cache.user)
}

func TestRequireAuth(t *testing.T) {
	backend := &fakeBackend{meErr: api.ErrUnauthorized}
	cache := &memCache{}
	ctrl := NewController(backend, cache, nil)
	ctx := context.Background()

	require.True(t, ctrl.RequireAuth(ctx, "login"), "public views never require auth")
	require.Equal(t, 0, backend.calls)

	require.False(t, ctrl.RequireAuth(ctx, "interview"))
	require.Equal(t, "interview", cache.pending, "gated view is saved for post-login resume")

	backend.meErr = nil
	backend.meUser = &api.User{Name: "Jane"}
	require.True(t, ctrl.RequireAuth(ctx, "dashboard"))
}

func TestTokenFromURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"http://localhost:5000/reset?token=abc123", "abc123"},
		{"http://localhost:5000/auth/reset-password/tok456", "tok456"},
		{"tok789", "tok789"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, TokenFromURL(tc.in), "input %q", tc.in)
	}
}
