package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered (exact, case-sensitive match).
var ErrDuplicateEmail = errors.New("users: email already registered")

// UserRepository owns the user collection.
type UserRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) load() ([]models.User, error) {
	var users []models.User
	if _, err := r.store.Get(store.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// All returns every user.
func (r *UserRepository) All() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByID looks up a user by id. The boolean reports whether it exists.
func (r *UserRepository) FindByID(id int) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// FindByEmail looks up a user by exact, case-sensitive email match.
func (r *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// Create assigns the next id, stamps CreatedAt and appends the user.
// The email uniqueness check runs here, under the collection lock, so
// two concurrent creates of the same address cannot both land.
func (r *UserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	id, err := nextSeq(r.store, store.KeyUsers+"_seq", 0)
	if err != nil {
		return err
	}
	user.ID = id
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	users = append(users, *user)
	return r.store.Set(store.KeyUsers, users)
}

// Delete removes the user with the given id. The boolean reports whether
// a record was removed.
func (r *UserRepository) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return false, err
	}

	kept := users[:0]
	removed := false
	for _, u := range users {
		if u.ID == id {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	if !removed {
		return false, nil
	}
	return true, r.store.Set(store.KeyUsers, kept)
}
