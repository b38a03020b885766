package repositories

import (
	"fmt"
	"sync"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// SessionRepository owns the single current-session record. Login
// replaces it wholesale, so the lifecycle is last-write-wins under the
// lock.
type SessionRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Get returns the current session. The boolean reports whether one exists.
func (r *SessionRepository) Get() (models.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sess models.Session
	found, err := r.store.Get(store.KeySession, &sess)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	return sess, found, nil
}

// Put replaces the current session.
func (r *SessionRepository) Put(sess models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Set(store.KeySession, sess)
}

// Clear removes the current session. Clearing an absent session is a
// no-op.
func (r *SessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(store.KeySession)
}
