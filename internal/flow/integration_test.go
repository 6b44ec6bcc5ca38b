package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/retry"
	"github.com/krish230803/Ai-Interview-System/internal/session"
	"github.com/krish230803/Ai-Interview-System/internal/testutil"
)

func TestFullInterviewAgainstFakeBackend(t *testing.T) {
	backend := testutil.NewFakeBackend(t, []string{
		"Tell me about yourself.",
		"Why do you want this role?",
	})

	client, err := api.NewClient(backend.URL(), 5*time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Login(ctx, "test@example.com", "password1")
	require.NoError(t, err)

	state := session.NewState(2)
	ctrl := NewController(client, state, retry.Fixed(3, time.Millisecond), nil)

	start, err := ctrl.Start(ctx)
	require.NoError(t, err)
	require.False(t, start.RedirectLogin)
	require.Equal(t, "Tell me about yourself.", start.Question)

	res, err := ctrl.SubmitAnswer(ctx, "I build software.", api.InputText)
	require.NoError(t, err)
	require.False(t, res.Completed)
	require.Equal(t, "Why do you want this role?", res.NextQuestion)
	require.Equal(t, "Positive", res.Sentiment)

	res, err = ctrl.SubmitAnswer(ctx, "Growth.", api.InputText)
	require.NoError(t, err)
	require.True(t, res.Completed)
	require.NotNil(t, res.Stats)
	require.Equal(t, 2, res.Stats.TotalQuestions)
	require.Equal(t, PhaseCompleted, ctrl.Phase())
}

func TestStartWithoutLoginRedirects(t *testing.T) {
	backend := testutil.NewFakeBackend(t, []string{"Q1"})

	client, err := api.NewClient(backend.URL(), 5*time.Second)
	require.NoError(t, err)

	ctrl := NewController(client, session.NewState(1), retry.Fixed(3, time.Millisecond), nil)
	res, err := ctrl.Start(context.Background())
	require.NoError(t, err)
	require.True(t, res.RedirectLogin)
}
