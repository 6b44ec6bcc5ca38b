// Package api implements the HTTP client for the interview backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned for 401 responses. Callers treat it as a
// session-expired signal and redirect to login instead of retrying.
var ErrUnauthorized = errors.New("authentication required")

// APIError is a non-2xx response carrying the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %d", e.Status)
}

// Client talks to the interview backend. The cookie jar carries the
// session cookie across calls, mirroring a browser's credentialed
// fetches. Safe for use from multiple goroutines.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// Login authenticates with email and password and returns the user.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		User  *User  `json:"user"`
		Error string `json:"error"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("no user in login response")
	}
	return resp.User, nil
}

// Register creates a new account. The server does not authenticate the
// new user; callers redirect to login afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

// ForgotPassword requests a reset link for the given email. In
// development mode the server returns the reset URL directly instead
// of emailing it; the returned string is empty otherwise.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var resp struct {
		ResetURL string `json:"reset_url"`
		Error    string `json:"error"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", body, &resp); err != nil {
		return "", err
	}
	return resp.ResetURL, nil
}

// ResetPassword sets a new password using the token from a reset link.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password/"+token, body, nil)
}

// Me returns the authenticated user, or ErrUnauthorized.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("no user in response")
	}
	return resp.User, nil
}

// Logout terminates the server session.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/auth/logout", nil, nil)
}

// StartInterview begins a session and returns the first question.
func (c *Client) StartInterview(ctx context.Context) (*StartResponse, error) {
	var resp StartResponse
	if err := c.doJSON(ctx, http.MethodGet, "/interview/start", nil, &resp); err != nil {
		return nil, err
	}
	if resp.NextQuestion == "" {
		return nil, errors.New("no question received from server")
	}
	return &resp, nil
}

// SubmitAnswer posts an answer and returns either the next question or
// the completion payload with statistics.
func (c *Client) SubmitAnswer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	var resp AnswerResponse
	if err := c.doJSON(ctx, http.MethodPost, "/interview", req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &APIError{Status: http.StatusOK, Message: resp.Error}
	}
	return &resp, nil
}

// doJSON performs a JSON request. 401 maps to ErrUnauthorized, other
// non-2xx statuses to *APIError with the server's error field when it
// decodes, and an undecodable success body to a parse error.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var serverErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &serverErr)
		return &APIError{Status: resp.StatusCode, Message: serverErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}
	return nil
}
