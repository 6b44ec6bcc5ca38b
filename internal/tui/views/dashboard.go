package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// NewInterviewRequestMsg is sent when the user wants another round.
type NewInterviewRequestMsg struct{}

// DashboardModel is the view model for the results screen.
type DashboardModel struct {
	viewport viewport.Model
	ready    bool
	saveNote string
	width    int
	height   int
}

// NewDashboardModel creates a DashboardModel with rendered content.
func NewDashboardModel(content string, width, height int) DashboardModel {
	vp := viewport.New(width-4, height-6)
	vp.SetContent(content)

	return DashboardModel{
		viewport: vp,
		ready:    true,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the dashboard view.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSaveNote shows the outcome of the local history write.
func (m *DashboardModel) SetSaveNote(note string) {
	m.saveNote = note
}

// Update handles messages for the dashboard view.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return m, func() tea.Msg { return NewInterviewRequestMsg{} }
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the dashboard view.
func (m DashboardModel) View() string {
	if !m.ready {
		return tui.DimStyle.Render("Preparing results...")
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.saveNote != "" {
		b.WriteString(tui.DimStyle.Render(m.saveNote))
		b.WriteString("\n")
	}
	b.WriteString(tui.DimStyle.Render("↑↓: scroll · n: new interview · q: quit"))
	return b.String()
}
