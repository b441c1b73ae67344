package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/infra/postgres"
	"github.com/aliskhannn/imtihan/internal/storage"
)

// SessionRepository keeps the exam session in PostgreSQL under a fixed key.
type SessionRepository struct {
	db  postgres.DBTX
	tx  *postgres.Transactor
	key string
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db postgres.DBTX, tx *postgres.Transactor, key string) *SessionRepository {
	if key == "" {
		key = storage.DefaultKey
	}
	return &SessionRepository{db: db, tx: tx, key: key}
}

// Load retrieves the saved session and its answers.
func (r *SessionRepository) Load(ctx context.Context) (*entities.ExamSession, error) {
	query := `
		SELECT session_id, mode, chunk_id, question_ids, choice_order, current_index,
		       correct, incorrect, total, percentage, completed, started_at, last_updated
		FROM exam_sessions
		WHERE key = $1
	`

	var (
		s           entities.ExamSession
		mode        string
		questionIDs []int64
		choiceOrder []byte
	)
	err := r.db.QueryRow(ctx, query, r.key).Scan(
		&s.ID,
		&mode,
		&s.ChunkID,
		&questionIDs,
		&choiceOrder,
		&s.CurrentIndex,
		&s.Score.Correct,
		&s.Score.Incorrect,
		&s.Score.Total,
		&s.Score.Percentage,
		&s.Completed,
		&s.Timestamp,
		&s.LastUpdated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s.Mode = entities.SessionMode(mode)
	s.QuestionIDs = make([]int, len(questionIDs))
	for i, id := range questionIDs {
		s.QuestionIDs[i] = int(id)
	}

	s.ChoiceOrder = make(map[int][]string)
	if len(choiceOrder) > 0 {
		if err := json.Unmarshal(choiceOrder, &s.ChoiceOrder); err != nil {
			return nil, fmt.Errorf("decode choice order: %w", err)
		}
	}

	answers, err := r.loadAnswers(ctx)
	if err != nil {
		return nil, err
	}
	s.Answers = answers

	return &s, nil
}

func (r *SessionRepository) loadAnswers(ctx context.Context) ([]entities.UserAnswer, error) {
	query := `
		SELECT question_id, user_answer, is_correct, answered_at
		FROM exam_answers
		WHERE key = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, r.key)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	answers := make([]entities.UserAnswer, 0)
	for rows.Next() {
		var (
			a          entities.UserAnswer
			questionID int64
		)
		if err := rows.Scan(&questionID, &a.UserAnswer, &a.IsCorrect, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.QuestionID = int(questionID)
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return answers, nil
}

// Save replaces the saved session and its answers in one transaction.
func (r *SessionRepository) Save(ctx context.Context, s *entities.ExamSession) error {
	choiceOrder, err := json.Marshal(s.ChoiceOrder)
	if err != nil {
		return fmt.Errorf("encode choice order: %w", err)
	}

	questionIDs := make([]int64, len(s.QuestionIDs))
	for i, id := range s.QuestionIDs {
		questionIDs[i] = int64(id)
	}

	return r.tx.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		query := `
			INSERT INTO exam_sessions (
				key, session_id, mode, chunk_id, question_ids, choice_order, current_index,
				correct, incorrect, total, percentage, completed, started_at, last_updated
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (key) DO UPDATE SET
				session_id = EXCLUDED.session_id,
				mode = EXCLUDED.mode,
				chunk_id = EXCLUDED.chunk_id,
				question_ids = EXCLUDED.question_ids,
				choice_order = EXCLUDED.choice_order,
				current_index = EXCLUDED.current_index,
				correct = EXCLUDED.correct,
				incorrect = EXCLUDED.incorrect,
				total = EXCLUDED.total,
				percentage = EXCLUDED.percentage,
				completed = EXCLUDED.completed,
				started_at = EXCLUDED.started_at,
				last_updated = EXCLUDED.last_updated
		`

		_, err := tx.Exec(ctx, query,
			r.key,
			s.ID,
			string(s.Mode),
			s.ChunkID,
			questionIDs,
			string(choiceOrder),
			s.CurrentIndex,
			s.Score.Correct,
			s.Score.Incorrect,
			s.Score.Total,
			s.Score.Percentage,
			s.Completed,
			s.Timestamp,
			s.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("upsert session: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM exam_answers WHERE key = $1`, r.key); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}

		for i, a := range s.Answers {
			_, err := tx.Exec(ctx, `
				INSERT INTO exam_answers (key, position, question_id, user_answer, is_correct, answered_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, r.key, i, int64(a.QuestionID), a.UserAnswer, a.IsCorrect, a.Timestamp)
			if err != nil {
				return fmt.Errorf("insert answer %d: %w", i, err)
			}
		}

		return nil
	})
}

// Clear deletes the saved session; answers go with it.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM exam_sessions WHERE key = $1`, r.key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
