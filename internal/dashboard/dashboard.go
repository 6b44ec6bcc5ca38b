// Package dashboard renders the results screen shown after an
// interview completes: a summary panel, a per-question table, and two
// bar charts.
package dashboard

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/log"
)

// ErrNoStats is returned when there is nothing to render. The caller
// stays on the interview view instead of showing an empty dashboard.
var ErrNoStats = errors.New("no interview statistics available")

const (
	maxScore     = 5.0
	barWidth     = 24
	cellWidth    = 32
	chartPad     = 12
	neutralLabel = "Neutral"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(1, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	barFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Chart is one rendered bar chart. Close releases it; a closed chart
// renders nothing. Each rebuild closes the previous chart in its slot
// first, so a slot never holds two live charts.
type Chart struct {
	title  string
	body   string
	closed bool
}

// View returns the rendered chart, or "" when closed.
func (c *Chart) View() string {
	if c == nil || c.closed {
		return ""
	}
	return c.body
}

// Close releases the chart.
func (c *Chart) Close() {
	if c != nil {
		c.closed = true
	}
}

// Charts holds the dashboard's two chart slots.
type Charts struct {
	Score     *Chart
	Sentiment *Chart
}

// Close closes both slots.
func (ch *Charts) Close() {
	ch.Score.Close()
	ch.Sentiment.Close()
	ch.Score = nil
	ch.Sentiment = nil
}

// Renderer builds the dashboard view from completion statistics.
type Renderer struct {
	logger *log.Logger
	charts Charts
}

// NewRenderer creates a Renderer. logger may be nil.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Charts exposes the current chart slots, mainly for inspection.
func (r *Renderer) Charts() *Charts {
	return &r.charts
}

// Render builds the full dashboard. Both the response list and the
// sentiment distribution must be present; rendering without them is
// refused rather than drawing an empty screen.
func (r *Renderer) Render(stats *api.InterviewStats, elapsed time.Duration) (string, error) {
	var reason string
	switch {
	case stats == nil:
		reason = "nil stats"
	case len(stats.DetailedResponses) == 0:
		reason = "no detailed responses"
	case len(stats.SentimentDistribution) == 0:
		reason = "no sentiment distribution"
	}
	if reason != "" {
		if r.logger != nil {
			_ = r.logger.Append(log.LogEvent{Event: log.EventDashboardSkipped, Reason: reason})
		}
		return "", ErrNoStats
	}

	r.charts.Close()
	r.charts.Score = buildScoreChart(stats.DetailedResponses)
	r.charts.Sentiment = buildSentimentChart(stats.SentimentDistribution)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Interview Results"))
	b.WriteString("\n\n")
	b.WriteString(r.summary(stats, elapsed))
	b.WriteString("\n\n")
	b.WriteString(responsesTable(stats.DetailedResponses))
	b.WriteString("\n\n")
	b.WriteString(r.charts.Score.View())
	b.WriteString("\n\n")
	b.WriteString(r.charts.Sentiment.View())
	b.WriteString("\n")

	return b.String(), nil
}

func (r *Renderer) summary(stats *api.InterviewStats, elapsed time.Duration) string {
	avg := stats.AverageScore
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		avg = 0
	}

	lines := []string{
		fmt.Sprintf("Average Score:     %.2f / %.0f", avg, maxScore),
		fmt.Sprintf("Avg Answer Length: %d words", int(math.Round(stats.AverageResponseLength))),
		fmt.Sprintf("Questions:         %d", stats.TotalQuestions),
		fmt.Sprintf("Duration:          %s", formatElapsed(elapsed)),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func responsesTable(responses []api.DetailedResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Responses"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-4s %-*s %-*s %-10s %s",
		"#", cellWidth, "Question", cellWidth, "Answer", "Sentiment", "Score")))
	b.WriteString("\n")

	for i, resp := range responses {
		question := orNA(resp.Question)
		answer := orNA(resp.Response)
		b.WriteString(fmt.Sprintf("%-4d %-*s %-*s %s %.2f\n",
			i+1,
			cellWidth, truncate(question, cellWidth),
			cellWidth, truncate(answer, cellWidth),
			sentimentCell(resp.Sentiment),
			clampScore(resp.Score.Float()),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildScoreChart(responses []api.DetailedResponse) *Chart {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Scores per Question"))
	b.WriteString("\n")
	for i, resp := range responses {
		score := clampScore(resp.Score.Float())
		b.WriteString(fmt.Sprintf("Q%-2d %s %.2f\n", i+1, bar(score, maxScore), score))
	}
	return &Chart{title: "scores", body: strings.TrimRight(b.String(), "\n")}
}

func buildSentimentChart(dist map[string]int) *Chart {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sentiment"))
	b.WriteString("\n")

	labels := make([]string, 0, len(dist))
	total := 0
	for label, n := range dist {
		labels = append(labels, label)
		total += n
	}
	sort.Strings(labels)

	if total == 0 {
		b.WriteString(dimStyle.Render("no sentiment data"))
		return &Chart{title: "sentiment", body: b.String()}
	}

	for _, label := range labels {
		n := dist[label]
		b.WriteString(fmt.Sprintf("%-*s %s %d\n", chartPad, truncate(label, chartPad), bar(float64(n), float64(total)), n))
	}
	return &Chart{title: "sentiment", body: strings.TrimRight(b.String(), "\n")}
}

func bar(value, max float64) string {
	if max <= 0 {
		max = 1
	}
	filled := int(math.Round(value / max * barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

// sentimentCell styles a sentiment label. Missing labels display as
// neutral rather than blank.
func sentimentCell(label string) string {
	if strings.TrimSpace(label) == "" {
		label = neutralLabel
	}
	padded := fmt.Sprintf("%-10s", truncate(label, 10))
	switch strings.ToLower(label) {
	case "positive":
		return positiveStyle.Render(padded)
	case "negative":
		return negativeStyle.Render(padded)
	default:
		return neutralStyle.Render(padded)
	}
}

func clampScore(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
