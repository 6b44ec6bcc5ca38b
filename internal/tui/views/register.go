package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// SubmitRegisterMsg is sent when the user submits the registration form.
type SubmitRegisterMsg struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// RegisterModel is the view model for the account creation screen.
type RegisterModel struct {
	inputs  []textinput.Model
	focus   int
	busy    bool
	errText string
	width   int
	height  int
}

var registerLabels = []string{"Full Name", "Email", "Password", "Confirm Password"}

// NewRegisterModel creates a RegisterModel.
func NewRegisterModel(width, height int) RegisterModel {
	inputs := make([]textinput.Model, 4)
	placeholders := []string{"Jane Doe", "you@example.com", "at least 8 characters", "repeat password"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		if i >= 2 {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return RegisterModel{inputs: inputs, width: width, height: height}
}

// Init returns the initial command for the register view.
func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows an error line under the form.
func (m *RegisterModel) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetBusy toggles the submitting indicator.
func (m *RegisterModel) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.errText = ""
	}
}

// Update handles messages for the register view.
func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
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
				return SubmitRegisterMsg{
					Name:     strings.TrimSpace(m.inputs[0].Value()),
					Email:    strings.TrimSpace(m.inputs[1].Value()),
					Password: m.inputs[2].Value(),
					Confirm:  m.inputs[3].Value(),
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

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// View renders the register view.
func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Create Account"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(tui.LabelStyle.Render(registerLabels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.busy {
		b.WriteString(tui.WarningStyle.Render("Creating account..."))
		b.WriteString("\n\n")
	} else if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter: create account · Tab: next field · Esc: back to sign in"))

	return formBox(b.String(), m.width)
}
