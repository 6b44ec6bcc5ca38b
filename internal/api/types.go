package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// User is the server's account record, cached locally for display.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StartResponse is the payload returned by GET /interview/start.
type StartResponse struct {
	SessionID      string `json:"session_id"`
	NextQuestion   string `json:"next_question"`
	QuestionNumber int    `json:"question_number"`
}

// AnswerRequest is the payload sent to POST /interview.
type AnswerRequest struct {
	SessionID       string `json:"session_id"`
	Response        string `json:"response"`
	CurrentQuestion string `json:"current_question"`
	QuestionNumber  int    `json:"question_number"`
	InputType       string `json:"inputType"`
}

// Input types for AnswerRequest.
const (
	InputText  = "text"
	InputVoice = "voice"
)

// AnswerResponse is the payload returned by POST /interview. Either
// Completed is true and Stats is set, or NextQuestion carries the
// following question.
type AnswerResponse struct {
	Completed      bool            `json:"completed"`
	Stats          *InterviewStats `json:"stats,omitempty"`
	NextQuestion   string          `json:"next_question"`
	QuestionNumber int             `json:"question_number"`
	Sentiment      Sentiment       `json:"sentiment"`
	Category       string          `json:"category"`
	Error          string          `json:"error"`
}

// Sentiment is returned either as a bare label or as an object with
// confidence and subjectivity percentages. Both forms decode into the
// same struct.
type Sentiment struct {
	Label        string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	Subjectivity float64 `json:"subjectivity"`
}

// UnmarshalJSON accepts both the string and the object form.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &s.Label)
	}

	type plain Sentiment
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Sentiment(p)
	return nil
}

// InterviewStats is the aggregate result returned when the interview
// completes. Consumed read-only by the dashboard.
type InterviewStats struct {
	AverageScore          float64            `json:"average_score"`
	AverageResponseLength float64            `json:"average_response_length"`
	TotalQuestions        int                `json:"total_questions"`
	SentimentDistribution map[string]int     `json:"sentiment_distribution"`
	DetailedResponses     []DetailedResponse `json:"detailed_responses"`
}

// DetailedResponse is one row of the results table.
type DetailedResponse struct {
	Question  string `json:"question"`
	Response  string `json:"response"`
	Sentiment string `json:"sentiment"`
	Score     Score  `json:"score"`
}

// Score tolerates non-numeric values in the server payload: numbers
// and numeric strings parse normally, anything else becomes zero so
// rendering never fails on a single bad row.
type Score float64

// UnmarshalJSON never returns an error for scalar values; garbage
// decodes as zero.
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = 0
			return nil
		}
		raw = str
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*s = 0
		return nil
	}
	*s = Score(f)
	return nil
}

// Float returns the score as a float64.
func (s Score) Float() float64 { return float64(s) }
