package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/dashboard"
	"github.com/krish230803/Ai-Interview-System/internal/session"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// RenderDashboardCmd builds the results screen from completion stats.
func RenderDashboardCmd(r *dashboard.Renderer, stats *api.InterviewStats, elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		content, err := r.Render(stats, elapsed)
		return tui.DashboardReadyMsg{Content: content, Err: err}
	}
}

// SaveResultCmd persists a completed interview to local history.
// store may be nil when history is disabled.
func SaveResultCmd(store *session.Store, startedAt time.Time, stats *api.InterviewStats) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return tui.ResultSavedMsg{}
		}
		_, err := store.SaveResult(startedAt, stats)
		return tui.ResultSavedMsg{Err: err}
	}
}
