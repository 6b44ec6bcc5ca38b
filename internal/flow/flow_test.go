package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/retry"
	"github.com/krish230803/Ai-Interview-System/internal/session"
)

type fakeBackend struct {
	startResp *api.StartResponse
	startErr  error

	submitCalls int
	// submitErrs[i] is returned for call i; calls beyond the slice
	// return submitResp.
	submitErrs []error
	submitResp *api.AnswerResponse
	lastReq    api.AnswerRequest
}

func (f *fakeBackend) StartInterview(_ context.Context) (*api.StartResponse, error) {
	return f.startResp, f.startErr
}

func (f *fakeBackend) SubmitAnswer(_ context.Context, req api.AnswerRequest) (*api.AnswerResponse, error) {
	f.lastReq = req
	i := f.submitCalls
	f.submitCalls++
	if i < len(f.submitErrs) && f.submitErrs[i] != nil {
		return nil, f.submitErrs[i]
	}
	return f.submitResp, nil
}

func newTestController(backend *fakeBackend) (*Controller, *session.State) {
	state := session.NewState(10)
	policy := retry.Fixed(3, time.Millisecond)
	return NewController(backend, state, policy, nil), state
}

func startedController(t *testing.T, backend *fakeBackend) (*Controller, *session.State) {
	t.Helper()
	backend.startResp = &api.StartResponse{SessionID: "sess-1", NextQuestion: "Tell me about yourself.", QuestionNumber: 1}
	ctrl, state := newTestController(backend)
	res, err := ctrl.Start(context.Background())
	require.NoError(t, err)
	require.False(t, res.RedirectLogin)
	return ctrl, state
}

func TestStartSeedsSession(t *testing.T) {
	backend := &fakeBackend{}
	ctrl, state := startedController(t, backend)

	require.Equal(t, PhaseAwaitingAnswer, ctrl.Phase())
	require.Equal(t, "sess-1", state.SessionID())
	require.Equal(t, 1, state.QuestionNumber())
	require.False(t, state.StartTime().IsZero())
}

func TestStartRedirectsOnExpiredSession(t *testing.T) {
	backend := &fakeBackend{startErr: api.ErrUnauthorized}
	ctrl, _ := newTestController(backend)

	res, err := ctrl.Start(context.Background())
	require.NoError(t, err)
	require.True(t, res.RedirectLogin)
	require.Equal(t, PhaseIdle, ctrl.Phase())
}

func TestSubmitRetriesThreeTimesThenFails(t *testing.T) {
	boom := errors.New("network error")
	backend := &fakeBackend{submitErrs: []error{boom, boom, boom}}
	ctrl, state := startedController(t, backend)

	_, err := ctrl.SubmitAnswer(context.Background(), "my answer", api.InputText)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, backend.submitCalls, "attempt budget is exactly three calls")
	require.False(t, state.IsSubmitting(), "guard must clear on failure")
	require.Equal(t, PhaseAwaitingAnswer, ctrl.Phase())
}

func TestSubmitSucceedsOnSecondAttempt(t *testing.T) {
	backend := &fakeBackend{
		submitErrs: []error{errors.New("transient")},
		submitResp: &api.AnswerResponse{NextQuestion: "Next one", QuestionNumber: 2},
	}
	ctrl, state := startedController(t, backend)

	res, err := ctrl.SubmitAnswer(context.Background(), "my answer", api.InputText)
	require.NoError(t, err)
	require.Equal(t, 2, backend.submitCalls)
	require.Equal(t, "Next one", res.NextQuestion)
	require.Equal(t, 2, res.QuestionNumber)
	require.Equal(t, 2, state.QuestionNumber())
}

func TestSubmitUnauthorizedNeverRetries(t *testing.T) {
	backend := &fakeBackend{submitErrs: []error{api.ErrUnauthorized, api.ErrUnauthorized, api.ErrUnauthorized}}
	ctrl, _ := startedController(t, backend)

	res, err := ctrl.SubmitAnswer(context.Background(), "my answer", api.InputText)
	require.NoError(t, err)
	require.True(t, res.RedirectLogin)
	require.Equal(t, 1, backend.submitCalls, "session expiry must abort on the first call")
}

func TestSubmitEmptyAnswerSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	ctrl, _ := startedController(t, backend)

	_, err := ctrl.SubmitAnswer(context.Background(), "   \n\t ", api.InputText)
	require.ErrorIs(t, err, ErrEmptyAnswer)
	require.Equal(t, 0, backend.submitCalls)
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	backend := &fakeBackend{}
	ctrl, state := startedController(t, backend)

	require.True(t, state.TryBeginSubmit())
	_, err := ctrl.SubmitAnswer(context.Background(), "answer", api.InputText)
	require.ErrorIs(t, err, ErrSubmissionInFlight)
	require.Equal(t, 0, backend.submitCalls)
	state.EndSubmit()
}

func TestSubmitCompletion(t *testing.T) {
	stats := &api.InterviewStats{AverageScore: 4.1, TotalQuestions: 10}
	backend := &fakeBackend{submitResp: &api.AnswerResponse{Completed: true, Stats: stats}}
	ctrl, _ := startedController(t, backend)

	res, err := ctrl.SubmitAnswer(context.Background(), "final answer", api.InputVoice)
	require.NoError(t, err)
	require.True(t, res.Completed)
	require.Equal(t, stats, res.Stats)
	require.Equal(t, PhaseCompleted, ctrl.Phase())
	require.Equal(t, api.InputVoice, backend.lastReq.InputType)

	_, err = ctrl.SubmitAnswer(context.Background(), "one more", api.InputText)
	require.ErrorIs(t, err, ErrInterviewCompleted)
}

func TestSubmitFallsBackToIncrementedNumber(t *testing.T) {
	backend := &fakeBackend{submitResp: &api.AnswerResponse{NextQuestion: "Next one"}}
	ctrl, _ := startedController(t, backend)

	res, err := ctrl.SubmitAnswer(context.Background(), "answer", api.InputText)
	require.NoError(t, err)
	require.Equal(t, 2, res.QuestionNumber, "missing server number increments the prior one")
}
