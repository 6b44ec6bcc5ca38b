// Package views provides the TUI view components.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// maxFormWidth is the maximum width for form boxes.
const maxFormWidth = 70

// SubmitLoginMsg is sent when the user submits the login form.
type SubmitLoginMsg struct {
	Email    string
	Password string
}

// LoginModel is the view model for the sign-in screen.
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errText  string
	notice   string
	width    int
	height   int
}

// NewLoginModel creates a LoginModel.
func NewLoginModel(width, height int) LoginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		email:    email,
		password: password,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the login view.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows an error line under the form.
func (m *LoginModel) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetNotice shows an informational line, e.g. after registration.
func (m *LoginModel) SetNotice(text string) {
	m.notice = text
}

// SetBusy toggles the submitting indicator.
func (m *LoginModel) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.errText = ""
	}
}

// Update handles messages for the login view.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.setFocus((m.focus + 1) % 2)
			return m, textinput.Blink
		case tui.KeyUp:
			m.setFocus((m.focus + 1) % 2)
			return m, textinput.Blink
		case tui.KeyEnter:
			email := strings.TrimSpace(m.email.Value())
			password := m.password.Value()
			return m, func() tea.Msg {
				return SubmitLoginMsg{Email: email, Password: password}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

// View renders the login view.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Sign In"))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(tui.SuccessStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.LabelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n\n")
	b.WriteString(tui.LabelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(tui.WarningStyle.Render("Signing in..."))
		b.WriteString("\n\n")
	} else if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter: sign in · Tab: next field"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Ctrl+N: create account · Ctrl+F: forgot password"))

	return formBox(b.String(), m.width)
}

// formBox wraps form content in the standard box at a capped width.
func formBox(content string, width int) string {
	boxWidth := maxFormWidth
	if width-4 < boxWidth {
		boxWidth = width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(content)
}
