package log

import (
	"testing"
)

func TestAppendAndReadAll(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events := []LogEvent{
		{Event: EventInterviewStarted, SessionID: "s-1"},
		{Event: EventAnswerRetry, SessionID: "s-1", QuestionNumber: 2, Attempt: 1, Reason: "network error"},
		{Event: EventInterviewCompleted, SessionID: "s-1", DurationMs: 90000},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	read, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(read) != len(events) {
		t.Fatalf("ReadAll: got %d events, want %d", len(read), len(events))
	}
	if read[1].Event != EventAnswerRetry || read[1].Attempt != 1 {
		t.Errorf("second event mismatch: %+v", read[1])
	}
	if read[0].Time.IsZero() {
		t.Error("Append should stamp zero times with now")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
