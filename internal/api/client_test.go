package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestLoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "jane@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"name": "Jane", "email": "jane@example.com"},
		})
	}))

	user, err := client.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "Jane", user.Name)
	require.Equal(t, "jane@example.com", user.Email)
}

func TestLoginServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))

	_, err := client.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestMeUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestStartInterviewRequiresQuestion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"session_id": "abc"})
	}))

	_, err := client.StartInterview(context.Background())
	require.Error(t, err)
}

func TestSubmitAnswerNextQuestion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "sess-1", req.SessionID)
		require.Equal(t, InputVoice, req.InputType)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"next_question":   "Tell me about a conflict you resolved.",
			"question_number": 3,
			"sentiment":       "Positive",
			"category":        "Behavioral",
		})
	}))

	resp, err := client.SubmitAnswer(context.Background(), AnswerRequest{
		SessionID:       "sess-1",
		Response:        "I led the migration.",
		CurrentQuestion: "What did you build?",
		QuestionNumber:  2,
		InputType:       InputVoice,
	})
	require.NoError(t, err)
	require.False(t, resp.Completed)
	require.Equal(t, 3, resp.QuestionNumber)
	require.Equal(t, "Positive", resp.Sentiment.Label)
	require.Equal(t, "Behavioral", resp.Category)
}

func TestSubmitAnswerErrorField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))

	_, err := client.SubmitAnswer(context.Background(), AnswerRequest{SessionID: "gone"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "session not found")
}

func TestSentimentObjectForm(t *testing.T) {
	var resp AnswerResponse
	payload := `{"next_question":"q","sentiment":{"sentiment":"Negative","confidence":81.5,"subjectivity":40.0}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Equal(t, "Negative", resp.Sentiment.Label)
	require.InDelta(t, 81.5, resp.Sentiment.Confidence, 0.001)
}

func TestScoreToleratesGarbage(t *testing.T) {
	cases := map[string]float64{
		`4.5`:      4.5,
		`"3.25"`:   3.25,
		`null`:     0,
		`"N/A"`:    0,
		`"NaN"`:    0,
		`"1e9999"`: 0,
	}
	for raw, want := range cases {
		var s Score
		require.NoError(t, json.Unmarshal([]byte(raw), &s), "input %s", raw)
		require.InDelta(t, want, s.Float(), 0.001, "input %s", raw)
	}
}

func TestSessionCookiePersists(t *testing.T) {
	var sawCookie bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok-1"})
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user": map[string]string{"name": "Jane", "email": "jane@example.com"},
			})
		case "/interview/start":
			if c, err := r.Cookie("session"); err == nil && c.Value == "tok-1" {
				sawCookie = true
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"session_id":      "sess-1",
				"next_question":   "Why this role?",
				"question_number": 1,
			})
		}
	}))

	_, err := client.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)

	_, err = client.StartInterview(context.Background())
	require.NoError(t, err)
	require.True(t, sawCookie, "session cookie should be replayed on interview calls")
}
