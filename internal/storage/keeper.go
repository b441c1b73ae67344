package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

// DefaultTTL is how long a saved session stays valid after it started.
const DefaultTTL = 7 * 24 * time.Hour

// Keeper wraps a Store with the expiration policy. Persistence failures are
// logged and never returned, so a broken store cannot block an attempt.
type Keeper struct {
	store Store
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
}

// KeeperOption configures a Keeper.
type KeeperOption func(*Keeper)

// WithClock overrides the time source used for expiration and LastUpdated.
func WithClock(now func() time.Time) KeeperOption {
	return func(k *Keeper) { k.now = now }
}

// NewKeeper creates a Keeper. A non-positive ttl means DefaultTTL.
func NewKeeper(store Store, ttl time.Duration, log *zap.Logger, opts ...KeeperOption) *Keeper {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}

	k := &Keeper{
		store: store,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Load returns the saved session, or nil if there is none, it expired or
// could not be read. Expired sessions are cleared.
func (k *Keeper) Load(ctx context.Context) *entities.ExamSession {
	session, err := k.store.Load(ctx)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		k.log.Error("failed to load session", zap.Error(err))
		return nil
	}

	if session.IsExpired(k.now(), k.ttl) {
		k.log.Info("saved session expired",
			zap.String("session_id", session.ID),
			zap.Time("started_at", session.Timestamp),
		)
		k.Clear(ctx)
		return nil
	}

	return session
}

// Save stamps LastUpdated and saves the session.
func (k *Keeper) Save(ctx context.Context, session *entities.ExamSession) {
	session.LastUpdated = k.now()
	if err := k.store.Save(ctx, session); err != nil {
		k.log.Error("failed to save session", zap.String("session_id", session.ID), zap.Error(err))
	}
}

// Clear removes the saved session.
func (k *Keeper) Clear(ctx context.Context) {
	if err := k.store.Clear(ctx); err != nil {
		k.log.Error("failed to clear session", zap.Error(err))
	}
}
