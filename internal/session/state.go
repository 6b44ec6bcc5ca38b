// Package session holds the state of one interview run and persists
// completed results.
package session

import (
	"sync"
	"time"
)

// State is the mutable record for a single interview session. One
// instance is created at startup and threaded through the flow,
// speech, and dashboard components; there are no ambient globals.
// Bubble Tea commands run in their own goroutines, so access is
// mutex-guarded.
type State struct {
	mu sync.Mutex

	sessionID       string
	currentQuestion string
	questionNumber  int
	totalQuestions  int
	startTime       time.Time

	submitting bool
	recording  bool
}

// NewState creates a State for an interview of totalQuestions.
func NewState(totalQuestions int) *State {
	return &State{totalQuestions: totalQuestions}
}

// Begin seeds the session from the first-question payload and stamps
// the start time.
func (s *State) Begin(sessionID, question string, number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = sessionID
	s.currentQuestion = question
	if number < 1 {
		number = 1
	}
	s.questionNumber = number
	s.startTime = time.Now()
}

// Advance replaces the current question. When the server omits the
// question number, the prior number is incremented instead.
func (s *State) Advance(question string, number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentQuestion = question
	if number > 0 {
		s.questionNumber = number
	} else {
		s.questionNumber++
	}
}

// Snapshot returns the current session values for building a request.
func (s *State) Snapshot() (sessionID, question string, number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID, s.currentQuestion, s.questionNumber
}

// SessionID returns the opaque server session id.
func (s *State) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Question returns the current question text.
func (s *State) Question() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentQuestion
}

// QuestionNumber returns the 1-based current question number.
func (s *State) QuestionNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionNumber
}

// TotalQuestions returns the configured interview length.
func (s *State) TotalQuestions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalQuestions
}

// StartTime returns when the first question was received.
func (s *State) StartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTime
}

// Elapsed returns the wall-clock time since the session began.
func (s *State) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// TryBeginSubmit flips the submission guard. It returns false when a
// submission is already in flight; concurrent submits are rejected,
// never queued.
func (s *State) TryBeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit clears the submission guard. Callers defer it so the
// guard is released on every exit path.
func (s *State) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// IsSubmitting reports whether a submission is in flight.
func (s *State) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// SetRecording tracks whether speech capture is active.
func (s *State) SetRecording(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recording = on
}

// IsRecording reports whether speech capture is active.
func (s *State) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}
