package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/speech"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// SpeechEvents bridges capture callbacks into the Bubble Tea message
// loop. Capture callbacks run on the capture goroutine; the channel
// hands them to WaitSpeechCmd, which the app re-issues after every
// event so the stream stays drained.
type SpeechEvents struct {
	ch chan tea.Msg
}

// NewSpeechEvents wires the capture callbacks and returns the bridge.
func NewSpeechEvents(capture *speech.Capture) *SpeechEvents {
	ev := &SpeechEvents{ch: make(chan tea.Msg, 16)}
	capture.OnUpdate = func(text string) {
		ev.ch <- tui.SpeechTextMsg{Text: text}
	}
	capture.OnError = func(err error) {
		ev.ch <- tui.SpeechErrorMsg{Err: err}
	}
	return ev
}

// StartSpeechCmd starts capture and begins draining events.
func StartSpeechCmd(capture *speech.Capture, ev *SpeechEvents) tea.Cmd {
	return func() tea.Msg {
		if err := capture.Start(); err != nil {
			return tui.SpeechErrorMsg{Err: err}
		}
		return tui.SpeechStartedMsg{}
	}
}

// WaitSpeechCmd blocks until the next speech event.
func WaitSpeechCmd(ev *SpeechEvents) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ev.ch
		if !ok {
			return tui.SpeechClosedMsg{}
		}
		return msg
	}
}
