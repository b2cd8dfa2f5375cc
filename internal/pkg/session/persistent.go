package session

import (
	"context"
	"time"

	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

const persistTimeout = 5 * time.Second

// Persister saves the session outside the process
type Persister interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Delete(ctx context.Context) error
}

// PersistentStore is a MemoryStore mirrored to a Persister. Reads never touch
// the persister. Persister failures are logged and never block a local logout.
type PersistentStore struct {
	*MemoryStore
	persister Persister
}

// NewPersistentStore restores any saved session and returns the store
func NewPersistentStore(ctx context.Context, persister Persister) (*PersistentStore, error) {
	store := &PersistentStore{
		MemoryStore: NewMemoryStore(),
		persister:   persister,
	}

	saved, err := persister.Load(ctx)
	if err != nil {
		return nil, err
	}
	if saved != nil && saved.Token != "" {
		store.MemoryStore.SetSession(saved.Token, saved.User)
	}
	return store, nil
}

func (s *PersistentStore) SetSession(token string, user *models.User) {
	s.MemoryStore.SetSession(token, user)

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.persister.Save(ctx, s.MemoryStore.Snapshot()); err != nil {
		logger.Warn("Failed to persist session", logger.Err(err))
	}
}

func (s *PersistentStore) ClearSession() {
	s.MemoryStore.ClearSession()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.persister.Delete(ctx); err != nil {
		logger.Warn("Failed to delete persisted session", logger.Err(err))
	}
}
