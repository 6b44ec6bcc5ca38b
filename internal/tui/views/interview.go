package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// maxInterviewWidth is the maximum width for the interview box.
const maxInterviewWidth = 90

// SubmitAnswerMsg is sent when the user submits their answer. Voice
// reports whether any of it came from speech capture.
type SubmitAnswerMsg struct {
	Answer string
	Voice  bool
}

// ToggleRecordingMsg is sent when the user toggles the microphone.
type ToggleRecordingMsg struct{}

// InterviewModel is the view model for the question/answer screen.
type InterviewModel struct {
	question       string
	questionNumber int
	totalQuestions int
	answer         textarea.Model
	spinner        spinner.Model
	submitting     bool
	recording      bool
	usedVoice      bool
	lastSentiment  string
	errText        string
	width          int
	height         int
}

// NewInterviewModel creates an InterviewModel for a question.
func NewInterviewModel(question string, number, total, width, height int) InterviewModel {
	ta := textarea.New()
	ta.Placeholder = "Type your answer, or press Ctrl+R to dictate..."
	ta.CharLimit = 5000
	ta.SetWidth(maxInterviewWidth - 8)
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return InterviewModel{
		question:       question,
		questionNumber: number,
		totalQuestions: total,
		answer:         ta,
		spinner:        sp,
		width:          width,
		height:         height,
	}
}

// Init returns the initial command for the interview view.
func (m InterviewModel) Init() tea.Cmd {
	return textarea.Blink
}

// Answer returns the current answer text.
func (m InterviewModel) Answer() string {
	return m.answer.Value()
}

// UsedVoice reports whether dictation contributed to the answer.
func (m InterviewModel) UsedVoice() bool {
	return m.usedVoice
}

// SetQuestion advances the view to the next question and clears the
// answer buffer.
func (m *InterviewModel) SetQuestion(question string, number int, sentiment string) {
	m.question = question
	m.questionNumber = number
	m.lastSentiment = sentiment
	m.answer.Reset()
	m.submitting = false
	m.recording = false
	m.usedVoice = false
	m.errText = ""
	m.answer.Focus()
}

// SetTranscript replaces the answer with the accumulated dictation.
func (m *InterviewModel) SetTranscript(text string) {
	m.answer.SetValue(text)
	m.usedVoice = true
}

// SetRecording toggles the microphone indicator.
func (m *InterviewModel) SetRecording(on bool) {
	m.recording = on
}

// SetSubmitting toggles the submission spinner.
func (m *InterviewModel) SetSubmitting(on bool) {
	m.submitting = on
	if on {
		m.errText = ""
	}
}

// SetError shows an error line under the form.
func (m *InterviewModel) SetError(text string) {
	m.errText = text
	m.submitting = false
}

// Update handles messages for the interview view.
func (m InterviewModel) Update(msg tea.Msg) (InterviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlS:
			if m.submitting {
				// Duplicate submits are dropped, not queued.
				return m, nil
			}
			answer := m.answer.Value()
			voice := m.usedVoice
			return m, func() tea.Msg {
				return SubmitAnswerMsg{Answer: answer, Voice: voice}
			}
		case tui.KeyCtrlR:
			if m.submitting {
				return m, nil
			}
			return m, func() tea.Msg { return ToggleRecordingMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.submitting {
		return m, nil
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

// SpinnerTick starts the spinner while submitting.
func (m InterviewModel) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

// View renders the interview view.
func (m InterviewModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Question %d of %d", m.questionNumber, m.totalQuestions)
	b.WriteString(tui.TitleStyle.Render(header))
	if m.recording {
		b.WriteString("  ")
		b.WriteString(tui.RecordingStyle.Render("● REC"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.question)
	b.WriteString("\n\n")

	if m.lastSentiment != "" {
		b.WriteString(tui.DimStyle.Render("Previous answer sentiment: "))
		b.WriteString(sentimentBadge(m.lastSentiment))
		b.WriteString("\n\n")
	}

	b.WriteString(m.answer.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(tui.WarningStyle.Render(" Submitting answer..."))
		b.WriteString("\n\n")
	} else if m.errText != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	micHint := "Ctrl+R: start dictation"
	if m.recording {
		micHint = "Ctrl+R: stop dictation"
	}
	b.WriteString(tui.DimStyle.Render("Ctrl+S: submit · " + micHint))

	boxWidth := maxInterviewWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}
	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}

// sentimentBadge styles a sentiment label in its signal color.
func sentimentBadge(label string) string {
	switch strings.ToLower(label) {
	case "positive":
		return tui.SuccessStyle.Render(label)
	case "negative":
		return tui.ErrorStyle.Render(label)
	default:
		return tui.WarningStyle.Render(label)
	}
}
