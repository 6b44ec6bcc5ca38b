package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// SubmitResetMsg is sent when the user submits a new password.
type SubmitResetMsg struct {
	TokenOrURL string
	Password   string
	Confirm    string
}

// ResetModel is the view model for the password-reset screen.
type ResetModel struct {
	inputs  []textinput.Model
	focus   int
	busy    bool
	errText string
	width   int
	height  int
}

var resetLabels = []string{"Reset Link or Token", "New Password", "Confirm Password"}

// NewResetModel creates a ResetModel. token pre-fills the first field
// when the user arrives from the dev reset link.
func NewResetModel(token string, width, height int) ResetModel {
	inputs := make([]textinput.Model, 3)
	placeholders := []string{"paste the link from your email", "at least 8 characters", "repeat password"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 250
		ti.Width = 44
		if i >= 1 {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	inputs[0].SetValue(token)

	m := ResetModel{inputs: inputs, width: width, height: height}
	if token != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init returns the initial command for the reset view.
func (m ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows an error line under the form.
func (m *ResetModel) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetBusy toggles the submitting indicator.
func (m *ResetModel) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.errText = ""
	}
}

// Update handles messages for the reset view.
func (m ResetModel) Update(msg tea.Msg) (ResetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, textinput.Blink
		case tui.KeyUp:
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, textinput.Blink
		case tui.KeyEnter:
			return m, func() tea.Msg {
				return SubmitResetMsg{
					TokenOrURL: strings.TrimSpace(m.inputs[0].Value()),
					Password:   m.inputs[1].Value(),
					Confirm:    m.inputs[2].Value(),
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ResetModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// View renders the reset view.
func (m ResetModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Reset Password"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(tui.LabelStyle.Render(resetLabels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.busy {
		b.WriteString(tui.WarningStyle.Render("Resetting password..."))
		b.WriteString("\n\n")
	} else if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter: reset password · Tab: next field · Esc: back to sign in"))

	return formBox(b.String(), m.width)
}
