package repository

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps sessions in process memory. Used for local
// runs and single-instance deployments.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]entities.Session
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]entities.Session), now: time.Now}
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return entities.Session{}, nil
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return entities.Session{}, nil
	}
	s.Values = maps.Clone(s.Values)
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	return s, nil
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Values = maps.Clone(s.Values)
	r.sessions[s.ID] = s
	r.sweep()
	return nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// sweep drops expired sessions; callers hold mu.
func (r *SessionMemoryRepository) sweep() {
	now := r.now()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
}
