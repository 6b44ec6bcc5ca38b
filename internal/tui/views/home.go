package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// StartInterviewMsg is sent when the user chooses to start.
type StartInterviewMsg struct{}

// RequestLogoutMsg is sent when the user chooses to sign out.
type RequestLogoutMsg struct{}

// homeItem is one selectable entry on the home screen.
type homeItem struct {
	label string
	hint  string
}

// HomeModel is the view model for the home screen.
type HomeModel struct {
	user     *api.User
	items    []homeItem
	selected int
	errText  string
	width    int
	height   int
}

// NewHomeModel creates a HomeModel for the given user.
func NewHomeModel(user *api.User, width, height int) HomeModel {
	return HomeModel{
		user: user,
		items: []homeItem{
			{label: "Start Interview", hint: "begin a new practice session"},
			{label: "Sign Out", hint: "end your session"},
		},
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the home view.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// SetUser refreshes the displayed user.
func (m *HomeModel) SetUser(user *api.User) {
	m.user = user
}

// SetError shows an error line, e.g. after a failed logout.
func (m *HomeModel) SetError(text string) {
	m.errText = text
}

// Update handles messages for the home view.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
		case tui.KeyDown, "j":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
		case tui.KeyEnter:
			switch m.selected {
			case 0:
				return m, func() tea.Msg { return StartInterviewMsg{} }
			case 1:
				return m, func() tea.Msg { return RequestLogoutMsg{} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the home view.
func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("AI Interview Practice"))
	b.WriteString("\n\n")

	if m.user != nil {
		b.WriteString(fmt.Sprintf("Welcome back, %s!", m.user.Name))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		if i == m.selected {
			b.WriteString(tui.SelectedStyle.Render("❯ " + item.label))
			b.WriteString("  ")
			b.WriteString(tui.DimStyle.Render(item.hint))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("↑↓: navigate · Enter: select · Ctrl+C: quit"))

	return formBox(b.String(), m.width)
}
