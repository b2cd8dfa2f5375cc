package session

import (
	"sync"

	jwtpkg "github.com/piresc/tiffinhub/internal/pkg/jwt"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

// Store is the process-wide authentication state. The HTTP client reads the
// token from it and clears it on authorization failures.
type Store interface {
	Token() string
	User() *models.User
	IsAuthenticated() bool
	SetSession(token string, user *models.User)
	ClearSession()
	Snapshot() models.Session
}

// MemoryStore keeps the session in memory
type MemoryStore struct {
	mu      sync.RWMutex
	session models.Session
}

// NewMemoryStore creates an empty, signed-out store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// User returns a copy of the signed-in user, nil when signed out
func (s *MemoryStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return nil
	}
	u := *s.session.User
	return &u
}

func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}

func (s *MemoryStore) SetSession(token string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u *models.User
	if user != nil {
		copied := *user
		u = &copied
	}
	s.session = models.Session{
		Token:           token,
		IsAuthenticated: token != "",
		User:            u,
	}
}

// ClearSession drops token, authenticated flag and user together
func (s *MemoryStore) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{}
}

func (s *MemoryStore) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.session
	if snap.User != nil {
		u := *snap.User
		snap.User = &u
	}
	return snap
}

// SetSessionFromToken signs in with a bearer token, taking the user from its claims
func SetSessionFromToken(store Store, token string) (*models.User, error) {
	claims, err := jwtpkg.ParseUnverified(token)
	if err != nil {
		return nil, err
	}
	user := claims.User()
	store.SetSession(token, user)
	return user, nil
}
