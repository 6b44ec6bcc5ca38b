package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/flow"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// StartInterviewCmd begins the interview and returns
// InterviewStartedMsg with the first question.
func StartInterviewCmd(f *flow.Controller) tea.Cmd {
	return func() tea.Msg {
		res, err := f.Start(context.Background())
		if err != nil {
			return tui.InterviewStartedMsg{Err: err}
		}
		return tui.InterviewStartedMsg{
			Question:       res.Question,
			QuestionNumber: res.QuestionNumber,
			RedirectLogin:  res.RedirectLogin,
		}
	}
}

// SubmitAnswerCmd submits one answer and returns AnswerResultMsg.
// Retries and the in-flight guard live in the flow controller; this
// command only adapts the call into a message.
func SubmitAnswerCmd(f *flow.Controller, answer, inputType string) tea.Cmd {
	return func() tea.Msg {
		res, err := f.SubmitAnswer(context.Background(), answer, inputType)
		return tui.AnswerResultMsg{Result: res, Err: err}
	}
}
