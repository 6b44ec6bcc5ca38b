// Package testutil provides test helper utilities.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/krish230803/Ai-Interview-System/internal/api"
)

// SampleStats returns a small completed-interview payload for tests.
func SampleStats() *api.InterviewStats {
	return &api.InterviewStats{
		AverageScore:          3.5,
		AverageResponseLength: 42,
		TotalQuestions:        2,
		SentimentDistribution: map[string]int{"Positive": 1, "Negative": 1},
		DetailedResponses: []api.DetailedResponse{
			{Question: "Tell me about yourself.", Response: "I build software.", Sentiment: "Positive", Score: 4},
			{Question: "Biggest weakness?", Response: "Estimates.", Sentiment: "Negative", Score: 3},
		},
	}
}

// FakeBackend is an httptest server speaking the interview API. It
// authenticates any login, serves a fixed question list, and returns
// SampleStats when the questions run out.
type FakeBackend struct {
	Server    *httptest.Server
	Questions []string

	mu       sync.Mutex
	loggedIn bool
	asked    int
}

// NewFakeBackend starts a FakeBackend. It is closed automatically
// when the test finishes.
func NewFakeBackend(t *testing.T, questions []string) *FakeBackend {
	t.Helper()

	f := &FakeBackend{Questions: questions}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", f.handleLogin)
	mux.HandleFunc("/auth/logout", f.handleLogout)
	mux.HandleFunc("/auth/me", f.handleMe)
	mux.HandleFunc("/interview/start", f.handleStart)
	mux.HandleFunc("/interview", f.handleAnswer)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the backend base URL.
func (f *FakeBackend) URL() string {
	return f.Server.URL
}

func (f *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.loggedIn = true
	f.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: "session", Value: "fake"})
	writeJSON(w, map[string]interface{}{
		"user": map[string]string{"name": "Test User", "email": "test@example.com"},
	})
}

func (f *FakeBackend) handleLogout(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.loggedIn = false
	f.mu.Unlock()
	writeJSON(w, map[string]string{"message": "ok"})
}

func (f *FakeBackend) handleMe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	ok := f.loggedIn
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]interface{}{
		"user": map[string]string{"name": "Test User", "email": "test@example.com"},
	})
}

func (f *FakeBackend) handleStart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loggedIn {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	f.asked = 1
	writeJSON(w, map[string]interface{}{
		"session_id":      "fake-session",
		"next_question":   f.Questions[0],
		"question_number": 1,
	})
}

func (f *FakeBackend) handleAnswer(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loggedIn {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if f.asked >= len(f.Questions) {
		writeJSON(w, map[string]interface{}{
			"completed": true,
			"stats":     SampleStats(),
		})
		return
	}

	f.asked++
	writeJSON(w, map[string]interface{}{
		"next_question":   f.Questions[f.asked-1],
		"question_number": f.asked,
		"sentiment":       "Positive",
		"category":        "general",
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
