package session

import "time"

// Interview is a persisted record of a completed interview.
type Interview struct {
	ID                    string
	StartedAt             time.Time
	CompletedAt           time.Time
	AverageScore          float64
	AverageResponseLength float64
	TotalQuestions        int
}

// Response is one persisted answer row of a completed interview.
type Response struct {
	ID             int64
	InterviewID    string
	QuestionNumber int
	Question       string
	Answer         string
	Sentiment      string
	Score          float64
}

// Summary is a lightweight listing row for the history view.
type Summary struct {
	ID             string
	CompletedAt    time.Time
	AverageScore   float64
	TotalQuestions int
	ResponseCount  int
}
