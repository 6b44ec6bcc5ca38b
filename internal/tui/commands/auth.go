// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/auth"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// CheckAuthCmd asks the server who is logged in. Returns
// AuthCheckedMsg with a nil user when there is no session.
func CheckAuthCmd(a *auth.Controller) tea.Cmd {
	return func() tea.Msg {
		return tui.AuthCheckedMsg{User: a.CheckAuth(context.Background())}
	}
}

// LoginCmd authenticates and returns LoginResultMsg. Target carries
// the view to resume when login was forced by an auth gate.
func LoginCmd(a *auth.Controller, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, target, err := a.Login(context.Background(), email, password)
		return tui.LoginResultMsg{User: user, Target: target, Err: err}
	}
}

// RegisterCmd creates an account and returns RegisterResultMsg.
func RegisterCmd(a *auth.Controller, name, email, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		return tui.RegisterResultMsg{Err: a.Register(context.Background(), name, email, password, confirm)}
	}
}

// ForgotPasswordCmd requests a reset link and returns ForgotResultMsg.
func ForgotPasswordCmd(a *auth.Controller, email string) tea.Cmd {
	return func() tea.Msg {
		instr, err := a.ForgotPassword(context.Background(), email)
		if err != nil {
			return tui.ForgotResultMsg{Err: err}
		}
		return tui.ForgotResultMsg{ResetURL: instr.ResetURL}
	}
}

// ResetPasswordCmd sets a new password and returns ResetResultMsg.
// tokenOrURL may be the full reset link or the bare token.
func ResetPasswordCmd(a *auth.Controller, tokenOrURL, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		token := auth.TokenFromURL(tokenOrURL)
		return tui.ResetResultMsg{Err: a.ResetPassword(context.Background(), token, password, confirm)}
	}
}

// LogoutCmd ends the session and returns LogoutResultMsg.
func LogoutCmd(a *auth.Controller) tea.Cmd {
	return func() tea.Msg {
		return tui.LogoutResultMsg{Err: a.Logout(context.Background())}
	}
}

// GateCmd runs the auth gate for a view. Expired sessions produce
// RedirectLoginMsg; the target view is already saved for post-login
// resume by the controller.
func GateCmd(a *auth.Controller, view string) tea.Cmd {
	return func() tea.Msg {
		if a.RequireAuth(context.Background(), view) {
			return tui.GateAllowedMsg{View: view}
		}
		return tui.RedirectLoginMsg{}
	}
}
