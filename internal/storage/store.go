// Package storage persists the in-progress exam session of a single device.
package storage

import (
	"context"
	"errors"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

// DefaultKey is the namespace the session is saved under.
const DefaultKey = "exam_session"

var ErrSessionNotFound = errors.New("saved session not found")

// Store saves a single exam session under a fixed key.
type Store interface {
	Load(ctx context.Context) (*entities.ExamSession, error)
	Save(ctx context.Context, s *entities.ExamSession) error
	Clear(ctx context.Context) error
}
