package tui

import (
	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/auth"
	"github.com/krish230803/Ai-Interview-System/internal/config"
	"github.com/krish230803/Ai-Interview-System/internal/dashboard"
	"github.com/krish230803/Ai-Interview-System/internal/flow"
	"github.com/krish230803/Ai-Interview-System/internal/session"
	"github.com/krish230803/Ai-Interview-System/internal/speech"
)

// ViewState represents the current screen of the TUI.
type ViewState int

const (
	StateHome ViewState = iota
	StateLogin
	StateRegister
	StateForgotPassword
	StateResetPassword
	StateInterview
	StateDashboard
)

// ViewName returns the routing name of a state, used for the
// auth gate and the post-login resume target.
func ViewName(s ViewState) string {
	switch s {
	case StateLogin:
		return "login"
	case StateRegister:
		return "register"
	case StateForgotPassword:
		return "forgot-password"
	case StateResetPassword:
		return "reset-password"
	case StateInterview:
		return "interview"
	case StateDashboard:
		return "dashboard"
	default:
		return "home"
	}
}

// StateForViewName is the inverse of ViewName.
func StateForViewName(name string) ViewState {
	switch name {
	case "login":
		return StateLogin
	case "register":
		return StateRegister
	case "forgot-password":
		return StateForgotPassword
	case "reset-password":
		return StateResetPassword
	case "interview":
		return StateInterview
	case "dashboard":
		return StateDashboard
	default:
		return StateHome
	}
}

// Model is the main TUI model that holds application state and the
// wired controllers.
type Model struct {
	// State management
	State ViewState
	Err   error

	// Authenticated user (from cache at startup, refreshed by the
	// server check).
	User *api.User

	// Configuration
	Cfg *config.Config

	// Controllers
	Auth     *auth.Controller
	Flow     *flow.Controller
	Session  *session.State
	Capture  *speech.Capture
	Renderer *dashboard.Renderer
	History  *session.Store

	// Completion payload held for the dashboard.
	Stats *api.InterviewStats

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool
}

// Deps bundles the controllers wired at startup.
type Deps struct {
	Cfg      *config.Config
	Auth     *auth.Controller
	Flow     *flow.Controller
	Session  *session.State
	Capture  *speech.Capture
	Renderer *dashboard.Renderer
	History  *session.Store
}

// NewModel creates a Model with the given dependencies.
func NewModel(d Deps) *Model {
	return &Model{
		State:    StateLogin,
		Cfg:      d.Cfg,
		Auth:     d.Auth,
		Flow:     d.Flow,
		Session:  d.Session,
		Capture:  d.Capture,
		Renderer: d.Renderer,
		History:  d.History,
		Width:    80,
		Height:   24,
	}
}
