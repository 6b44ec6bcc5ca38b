package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/krish230803/Ai-Interview-System/internal/api"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleStats() *api.InterviewStats {
	return &api.InterviewStats{
		AverageScore:          3.5,
		AverageResponseLength: 42,
		TotalQuestions:        2,
		SentimentDistribution: map[string]int{"Positive": 1, "Negative": 1},
		DetailedResponses: []api.DetailedResponse{
			{Question: "Q1", Response: "A1", Sentiment: "Positive", Score: 4},
			{Question: "Q2", Response: "A2", Sentiment: "Negative", Score: 3},
		},
	}
}

func TestSaveAndGetResult(t *testing.T) {
	store := newTestStore(t)

	started := time.Now().Add(-10 * time.Minute)
	rec, err := store.SaveResult(started, sampleStats())
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	loaded, err := store.GetInterview(rec.ID)
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("GetInterview returned nil for a stored interview")
	}
	if loaded.AverageScore != 3.5 {
		t.Errorf("AverageScore: got %v, want 3.5", loaded.AverageScore)
	}
	if loaded.TotalQuestions != 2 {
		t.Errorf("TotalQuestions: got %d, want 2", loaded.TotalQuestions)
	}

	responses, err := store.GetResponses(rec.ID)
	if err != nil {
		t.Fatalf("GetResponses failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("responses: got %d, want 2", len(responses))
	}
	if responses[0].QuestionNumber != 1 || responses[0].Question != "Q1" {
		t.Errorf("first response mismatch: %+v", responses[0])
	}
}

func TestListInterviews(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveResult(time.Now(), sampleStats()); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	summaries, err := store.ListInterviews(2)
	if err != nil {
		t.Fatalf("ListInterviews failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries: got %d, want 2 (limit)", len(summaries))
	}
	if summaries[0].ResponseCount != 2 {
		t.Errorf("ResponseCount: got %d, want 2", summaries[0].ResponseCount)
	}
}

func TestGetInterviewMissing(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.GetInterview("nope")
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	if rec != nil {
		t.Error("GetInterview should return nil for unknown ids")
	}
}
