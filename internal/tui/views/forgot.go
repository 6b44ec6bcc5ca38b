package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// SubmitForgotMsg is sent when the user requests a reset link.
type SubmitForgotMsg struct {
	Email string
}

// ForgotModel is the view model for the forgot-password screen.
type ForgotModel struct {
	email    textinput.Model
	busy     bool
	errText  string
	resetURL string
	sent     bool
	width    int
	height   int
}

// NewForgotModel creates a ForgotModel.
func NewForgotModel(width, height int) ForgotModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	return ForgotModel{email: email, width: width, height: height}
}

// Init returns the initial command for the forgot view.
func (m ForgotModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows an error line under the form.
func (m *ForgotModel) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetBusy toggles the submitting indicator.
func (m *ForgotModel) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.errText = ""
	}
}

// SetSent marks the request as delivered. resetURL is only filled by
// development servers, which return the link instead of emailing it.
func (m *ForgotModel) SetSent(resetURL string) {
	m.busy = false
	m.sent = true
	m.resetURL = resetURL
}

// Update handles messages for the forgot view.
func (m ForgotModel) Update(msg tea.Msg) (ForgotModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if msg.String() == tui.KeyEnter {
			email := strings.TrimSpace(m.email.Value())
			return m, func() tea.Msg {
				return SubmitForgotMsg{Email: email}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

// View renders the forgot view.
func (m ForgotModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Forgot Password"))
	b.WriteString("\n\n")
	b.WriteString(tui.LabelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(tui.WarningStyle.Render("Requesting reset link..."))
		b.WriteString("\n\n")
	case m.errText != "":
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	case m.sent:
		b.WriteString(tui.SuccessStyle.Render("If that account exists, a reset link has been sent."))
		b.WriteString("\n")
		if m.resetURL != "" {
			b.WriteString(tui.DimStyle.Render("Dev reset link: "))
			b.WriteString(m.resetURL)
			b.WriteString("\n")
			b.WriteString(tui.DimStyle.Render("Press Ctrl+T to open the reset form with this link."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter: send link · Esc: back to sign in"))

	return formBox(b.String(), m.width)
}

// ResetURL returns the development reset link, if one was received.
func (m ForgotModel) ResetURL() string {
	return m.resetURL
}
