package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/collection"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// MessageRepository owns the contact message collection.
type MessageRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewMessageRepository(s store.Store) *MessageRepository {
	return &MessageRepository{store: s}
}

func (r *MessageRepository) load() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if _, err := r.store.Get(store.KeyMessages, &msgs); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	return msgs, nil
}

// All returns every contact message, most recent first.
func (r *MessageRepository) All() ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return nil, err
	}
	return collection.SortBy(msgs, func(a, b models.ContactMessage) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

// Create assigns the next id, stamps CreatedAt, forces status to unread
// and appends the message.
func (r *MessageRepository) Create(m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}

	id, err := nextSeq(r.store, store.KeyMessages+"_seq", 0)
	if err != nil {
		return err
	}
	m.ID = id
	m.Status = models.MessageUnread
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	msgs = append(msgs, *m)
	return r.store.Set(store.KeyMessages, msgs)
}
