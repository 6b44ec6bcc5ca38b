package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/krish230803/Ai-Interview-System/internal/api"
)

// Store provides SQLite-backed persistence for completed interviews.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at dbPath and creates tables if they don't exist.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS interviews (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		completed_at DATETIME NOT NULL,
		average_score REAL NOT NULL,
		average_response_length REAL NOT NULL,
		total_questions INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		interview_id TEXT NOT NULL,
		question_number INTEGER NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		sentiment TEXT,
		score REAL DEFAULT 0,
		FOREIGN KEY (interview_id) REFERENCES interviews(id)
	);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveResult persists the statistics of a completed interview and
// returns the stored record. The interview id is generated locally;
// the server session id is not reused because it is opaque and may be
// recycled.
func (s *Store) SaveResult(startedAt time.Time, stats *api.InterviewStats) (*Interview, error) {
	if stats == nil {
		return nil, fmt.Errorf("no stats to save")
	}

	rec := &Interview{
		ID:                    uuid.New().String(),
		StartedAt:             startedAt,
		CompletedAt:           time.Now(),
		AverageScore:          stats.AverageScore,
		AverageResponseLength: stats.AverageResponseLength,
		TotalQuestions:        stats.TotalQuestions,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO interviews (id, started_at, completed_at, average_score, average_response_length, total_questions)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt, rec.CompletedAt, rec.AverageScore, rec.AverageResponseLength, rec.TotalQuestions,
	)
	if err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}

	for i, r := range stats.DetailedResponses {
		_, err = tx.Exec(
			`INSERT INTO responses (interview_id, question_number, question, answer, sentiment, score)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, i+1, r.Question, r.Response, r.Sentiment, r.Score.Float(),
		)
		if err != nil {
			return nil, fmt.Errorf("insert response: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// GetInterview retrieves a stored interview by ID. Returns nil when absent.
func (s *Store) GetInterview(id string) (*Interview, error) {
	row := s.db.QueryRow(
		`SELECT id, started_at, completed_at, average_score, average_response_length, total_questions
		 FROM interviews WHERE id = ?`,
		id,
	)

	var rec Interview
	err := row.Scan(&rec.ID, &rec.StartedAt, &rec.CompletedAt, &rec.AverageScore, &rec.AverageResponseLength, &rec.TotalQuestions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan interview: %w", err)
	}

	return &rec, nil
}

// ListInterviews returns summaries of the most recent interviews.
func (s *Store) ListInterviews(limit int) ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT i.id, i.completed_at, i.average_score, i.total_questions,
		        COALESCE(COUNT(r.id), 0) as response_count
		 FROM interviews i
		 LEFT JOIN responses r ON i.id = r.interview_id
		 GROUP BY i.id
		 ORDER BY i.completed_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.CompletedAt, &sum.AverageScore, &sum.TotalQuestions, &sum.ResponseCount); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return summaries, nil
}

// GetResponses retrieves all answer rows for an interview in question order.
func (s *Store) GetResponses(interviewID string) ([]Response, error) {
	rows, err := s.db.Query(
		`SELECT id, interview_id, question_number, question, answer, COALESCE(sentiment, ''), score
		 FROM responses
		 WHERE interview_id = ?
		 ORDER BY question_number ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var responses []Response
	for rows.Next() {
		var r Response
		if err := rows.Scan(&r.ID, &r.InterviewID, &r.QuestionNumber, &r.Question, &r.Answer, &r.Sentiment, &r.Score); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return responses, nil
}
