// Package auth drives the sign-in, registration, and password-reset
// flows and decides which views require an authenticated session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/log"
)

// Backend is the slice of the API client that auth flows use.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.User, error)
	Register(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) error
	Me(ctx context.Context) (*api.User, error)
	Logout(ctx context.Context) error
}

// UserCache holds the locally cached user record and the view to
// resume after a forced login.
type UserCache interface {
	SaveUser(*api.User) error
	LoadUser() (*api.User, error)
	ClearUser() error
	SavePendingTarget(string) error
	TakePendingTarget() (string, error)
}

// Validation errors are returned before any network call is made.
var (
	ErrMissingFields     = errors.New("please fill in all fields")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrMissingResetToken = errors.New("invalid or missing reset token")
)

// Views that can be shown without a session.
var publicViews = map[string]bool{
	"home":            true,
	"login":           true,
	"register":        true,
	"forgot-password": true,
	"reset-password":  true,
}

const minPasswordLen = 8

// ResetInstructions is the outcome of a forgot-password request. The
// server only fills ResetURL in development mode, where no email is
// sent.
type ResetInstructions struct {
	ResetURL string
}

// Controller runs the auth flows against a backend and keeps the
// local user cache in sync with the server's view of the session.
type Controller struct {
	backend Backend
	cache   UserCache
	logger  *log.Logger
}

// NewController creates a Controller. logger may be nil.
func NewController(backend Backend, cache UserCache, logger *log.Logger) *Controller {
	return &Controller{backend: backend, cache: cache, logger: logger}
}

// Login authenticates and caches the user. It also returns the view
// the user was redirected away from, if any, so the caller can resume
// there; the second return is "" when there is nothing to resume.
func (c *Controller) Login(ctx context.Context, email, password string) (*api.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := c.backend.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	if err := c.cache.SaveUser(user); err != nil {
		return nil, "", fmt.Errorf("caching user: %w", err)
	}
	c.logEvent(log.LogEvent{Event: log.EventAuthLogin, Email: user.Email})

	target, err := c.cache.TakePendingTarget()
	if err != nil {
		target = ""
	}
	return user, target, nil
}

// Register creates an account. The caller sends the user to the login
// view on success; registration does not establish a session.
func (c *Controller) Register(ctx context.Context, name, email, password, confirm string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || confirm == "" {
		return ErrMissingFields
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	if err := c.backend.Register(ctx, name, email, password); err != nil {
		return err
	}
	c.logEvent(log.LogEvent{Event: log.EventAuthRegister, Email: email})
	return nil
}

// ForgotPassword requests a reset link for the email.
func (c *Controller) ForgotPassword(ctx context.Context, email string) (*ResetInstructions, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrMissingFields
	}

	resetURL, err := c.backend.ForgotPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ResetInstructions{ResetURL: resetURL}, nil
}

// ResetPassword sets a new password using a token from a reset link.
func (c *Controller) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if token == "" {
		return ErrMissingResetToken
	}
	if password == "" || confirm == "" {
		return ErrMissingFields
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return c.backend.ResetPassword(ctx, token, password)
}

// CheckAuth asks the server who is logged in. It returns the user, or
// nil when the session is absent or expired; it never returns an
// error, because every failure mode means the same thing to the
// caller: not authenticated. The cache is updated to match.
func (c *Controller) CheckAuth(ctx context.Context) *api.User {
	user, err := c.backend.Me(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			c.logEvent(log.LogEvent{Event: log.EventAuthCheckFailed, Error: err.Error()})
		}
		_ = c.cache.ClearUser()
		return nil
	}

	_ = c.cache.SaveUser(user)
	return user
}

// CachedUser returns the locally cached user without a network call,
// or nil when none is cached.
func (c *Controller) CachedUser() *api.User {
	u, err := c.cache.LoadUser()
	if err != nil {
		return nil
	}
	return u
}

// Logout ends the server session and then clears the cache. The cache
// is left intact when the server call fails, so local and server state
// cannot silently diverge.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.backend.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	if err := c.cache.ClearUser(); err != nil {
		return fmt.Errorf("clearing user cache: %w", err)
	}
	c.logEvent(log.LogEvent{Event: log.EventAuthLogout})
	return nil
}

// RequireAuth reports whether view may be shown. When the view is
// gated and the session check fails, the view name is saved so login
// can resume there, and false is returned.
func (c *Controller) RequireAuth(ctx context.Context, view string) bool {
	if publicViews[view] {
		return true
	}

	if c.CheckAuth(ctx) == nil {
		_ = c.cache.SavePendingTarget(view)
		return false
	}
	return true
}

// TokenFromURL extracts the reset token from a password-reset link.
// Accepts either a ?token= query parameter or a bare token string.
func TokenFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if token := u.Query().Get("token"); token != "" {
		return token
	}
	// Reset links also come as /auth/reset-password/<token>.
	if i := strings.LastIndex(u.Path, "/"); i >= 0 && i < len(u.Path)-1 {
		seg := u.Path[i+1:]
		if seg != "reset-password" {
			return seg
		}
	}
	if u.Scheme == "" && u.Host == "" && !strings.Contains(raw, "/") {
		return raw
	}
	return ""
}

func (c *Controller) logEvent(event log.LogEvent) {
	if c.logger == nil {
		return
	}
	_ = c.logger.Append(event)
}
