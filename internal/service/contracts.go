package service

import (
	"context"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

// QuestionRepo is the read-only question bank.
type QuestionRepo interface {
	GetAll(ctx context.Context) ([]*entities.Question, error)
	GetByID(ctx context.Context, id int) (*entities.Question, error)
	GetByLectures(ctx context.Context, lectures []int) ([]*entities.Question, error)
}

// SessionKeeper persists the active attempt. Implementations log their own
// failures; none of these calls can fail the grading flow.
type SessionKeeper interface {
	Load(ctx context.Context) *entities.ExamSession
	Save(ctx context.Context, s *entities.ExamSession)
	Clear(ctx context.Context)
}
