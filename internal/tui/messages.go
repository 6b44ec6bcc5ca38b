package tui

import (
	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/flow"
)

// ============================================================================
// Auth Messages
// ============================================================================

// AuthCheckedMsg carries the result of the startup session check.
// User is nil when not authenticated.
type AuthCheckedMsg struct {
	User *api.User
}

// LoginResultMsg carries the outcome of a login attempt. Target is the
// view to resume after a forced login, "" for the default.
type LoginResultMsg struct {
	User   *api.User
	Target string
	Err    error
}

// RegisterResultMsg carries the outcome of a registration attempt.
type RegisterResultMsg struct {
	Err error
}

// ForgotResultMsg carries the outcome of a forgot-password request.
// ResetURL is only set by development servers.
type ForgotResultMsg struct {
	ResetURL string
	Err      error
}

// ResetResultMsg carries the outcome of a password reset.
type ResetResultMsg struct {
	Err error
}

// LogoutResultMsg carries the outcome of a logout. On error the user
// stays signed in and the error is shown.
type LogoutResultMsg struct {
	Err error
}

// RedirectLoginMsg routes to the login view after a session expiry.
type RedirectLoginMsg struct{}

// GateAllowedMsg signals that the auth gate passed for a view.
type GateAllowedMsg struct {
	View string
}

// ============================================================================
// Interview Messages
// ============================================================================

// InterviewStartedMsg carries the first question, or the redirect flag
// when the session expired before the interview could start.
type InterviewStartedMsg struct {
	Question       string
	QuestionNumber int
	RedirectLogin  bool
	Err            error
}

// AnswerResultMsg carries the outcome of one answer submission.
type AnswerResultMsg struct {
	Result *flow.SubmitResult
	Err    error
}

// ============================================================================
// Speech Messages
// ============================================================================

// SpeechTextMsg carries the accumulated transcript after a
// recognition event.
type SpeechTextMsg struct {
	Text string
}

// SpeechErrorMsg carries a recognition failure. Capture has already
// stopped when this arrives.
type SpeechErrorMsg struct {
	Err error
}

// SpeechStartedMsg signals that capture began.
type SpeechStartedMsg struct{}

// SpeechClosedMsg signals that the speech event stream ended.
type SpeechClosedMsg struct{}

// ============================================================================
// Dashboard Messages
// ============================================================================

// DashboardReadyMsg carries the rendered dashboard content.
type DashboardReadyMsg struct {
	Content string
	Err     error
}

// ResultSavedMsg signals that the completed interview was written to
// local history.
type ResultSavedMsg struct {
	Err error
}

// ============================================================================
// Utility Messages
// ============================================================================

// NavigateMsg routes to another view.
type NavigateMsg struct {
	State ViewState
}

// CtrlCResetMsg resets the quit confirmation after its timeout.
type CtrlCResetMsg struct{}

// ErrorMsg is a generic error message for unrecoverable errors.
type ErrorMsg struct {
	Err error
}
