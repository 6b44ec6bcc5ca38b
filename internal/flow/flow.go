// Package flow sequences an interview run: start, answer submission
// with bounded retries, and completion.
package flow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/log"
	"github.com/krish230803/Ai-Interview-System/internal/retry"
	"github.com/krish230803/Ai-Interview-System/internal/session"
)

// Phase is where the interview currently stands. Start is a
// synchronous call, so there is no separate phase between Idle and
// AwaitingAnswer while the first question is fetched.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingAnswer
	PhaseSubmitting
	PhaseCompleted
)

var (
	// ErrEmptyAnswer rejects whitespace-only answers before any
	// network traffic.
	ErrEmptyAnswer = errors.New("please provide an answer before submitting")

	// ErrSubmissionInFlight rejects a submit while one is already
	// running. The duplicate is dropped, not queued.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrInterviewCompleted rejects operations after completion.
	ErrInterviewCompleted = errors.New("interview already completed")
)

// Backend is the slice of the API client the flow uses.
type Backend interface {
	StartInterview(ctx context.Context) (*api.StartResponse, error)
	SubmitAnswer(ctx context.Context, req api.AnswerRequest) (*api.AnswerResponse, error)
}

// Recorder is stopped before each submission so a live microphone
// never keeps appending to an answer that is already on the wire.
type Recorder interface {
	Stop()
	Active() bool
}

// StartResult is the outcome of starting an interview.
type StartResult struct {
	Question       string
	QuestionNumber int

	// RedirectLogin is set when the session has expired; the caller
	// routes to the login view instead of showing an error.
	RedirectLogin bool
}

// SubmitResult is the outcome of one answer submission.
type SubmitResult struct {
	Completed      bool
	Stats          *api.InterviewStats
	NextQuestion   string
	QuestionNumber int
	Sentiment      string
	Category       string
	RedirectLogin  bool
}

// Controller drives one interview run against the backend. A single
// Controller serves a single session; create a new one to start over.
type Controller struct {
	backend  Backend
	state    *session.State
	logger   *log.Logger
	recorder Recorder

	policy retry.Policy

	mu    sync.Mutex
	phase Phase
}

// NewController wires a Controller. logger and recorder may be nil.
func NewController(backend Backend, state *session.State, policy retry.Policy, logger *log.Logger) *Controller {
	return &Controller{
		backend: backend,
		state:   state,
		policy:  policy,
		logger:  logger,
	}
}

// SetRecorder attaches the speech recorder. Done after construction
// because the recorder itself needs the session state.
func (c *Controller) SetRecorder(r Recorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *Controller) logEvent(event log.LogEvent) {
	if c.logger == nil {
		return
	}
	_ = c.logger.Append(event)
}

// Reset returns the controller to idle so another interview can run
// on the same wiring. The session state is reseeded by the next Start.
func (c *Controller) Reset() {
	c.setPhase(PhaseIdle)
}

// Start begins the interview and seeds the session with the first
// question. Starting is never retried: a failed start is shown to the
// user, who can try again deliberately.
func (c *Controller) Start(ctx context.Context) (*StartResult, error) {
	if c.Phase() == PhaseCompleted {
		return nil, ErrInterviewCompleted
	}

	resp, err := c.backend.StartInterview(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return &StartResult{RedirectLogin: true}, nil
		}
		return nil, err
	}

	c.state.Begin(resp.SessionID, resp.NextQuestion, resp.QuestionNumber)
	c.setPhase(PhaseAwaitingAnswer)
	c.logEvent(log.LogEvent{
		Event:          log.EventInterviewStarted,
		SessionID:      resp.SessionID,
		QuestionNumber: c.state.QuestionNumber(),
	})

	return &StartResult{
		Question:       c.state.Question(),
		QuestionNumber: c.state.QuestionNumber(),
	}, nil
}

// SubmitAnswer sends one answer, retrying transient failures up to the
// policy's budget. Session expiry aborts immediately and flags a
// redirect instead of burning retry attempts on a dead session.
func (c *Controller) SubmitAnswer(ctx context.Context, answer, inputType string) (*SubmitResult, error) {
	if c.Phase() == PhaseCompleted {
		return nil, ErrInterviewCompleted
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	if !c.state.TryBeginSubmit() {
		return nil, ErrSubmissionInFlight
	}
	defer c.state.EndSubmit()

	if c.recorder != nil && c.recorder.Active() {
		c.recorder.Stop()
	}

	c.setPhase(PhaseSubmitting)
	defer func() {
		if c.Phase() == PhaseSubmitting {
			c.setPhase(PhaseAwaitingAnswer)
		}
	}()

	sessionID, question, number := c.state.Snapshot()
	req := api.AnswerRequest{
		SessionID:       sessionID,
		Response:        answer,
		CurrentQuestion: question,
		QuestionNumber:  number,
		InputType:       inputType,
	}

	policy := c.policy
	policy.Retryable = func(err error) bool {
		return !errors.Is(err, api.ErrUnauthorized)
	}
	policy.OnRetry = func(attempt int, err error) {
		c.logEvent(log.LogEvent{
			Event:          log.EventAnswerRetry,
			SessionID:      sessionID,
			QuestionNumber: number,
			Attempt:        attempt,
			Error:          err.Error(),
		})
	}

	var resp *api.AnswerResponse
	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.backend.SubmitAnswer(ctx, req)
		return callErr
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return &SubmitResult{RedirectLogin: true}, nil
		}
		return nil, err
	}

	c.logEvent(log.LogEvent{
		Event:          log.EventAnswerSubmitted,
		SessionID:      sessionID,
		QuestionNumber: number,
		InputType:      inputType,
	})

	if resp.Completed {
		c.setPhase(PhaseCompleted)
		c.logEvent(log.LogEvent{
			Event:      log.EventInterviewCompleted,
			SessionID:  sessionID,
			DurationMs: c.state.Elapsed().Milliseconds(),
		})
		return &SubmitResult{Completed: true, Stats: resp.Stats}, nil
	}

	c.state.Advance(resp.NextQuestion, resp.QuestionNumber)
	return &SubmitResult{
		NextQuestion:   c.state.Question(),
		QuestionNumber: c.state.QuestionNumber(),
		Sentiment:      resp.Sentiment.Label,
		Category:       resp.Category,
	}, nil
}
