package repositories_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

func newStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestConcurrentUserCreatesLoseNothing(t *testing.T) {
	repo := repositories.NewUserRepository(newStore(t))

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := models.User{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("user%d@example.com", i),
				Role:  models.RoleUser,
			}
			if err := repo.Create(&u); err != nil {
				t.Errorf("create %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != n {
		t.Fatalf("expected %d users, got %d (lost updates)", n, len(all))
	}

	seen := map[int]bool{}
	for _, u := range all {
		if seen[u.ID] {
			t.Errorf("duplicate id %d", u.ID)
		}
		seen[u.ID] = true
	}
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := repositories.NewUserRepository(newStore(t))

	first := models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
	if err := repo.Create(&first); err != nil {
		t.Fatal(err)
	}

	dup := models.User{Name: "Imposter", Email: "ada@example.com", Role: models.RoleUser}
	if err := repo.Create(&dup); !errors.Is(err, repositories.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 user, got %d", len(all))
	}
}

func TestConcurrentDuplicateCreatesAdmitExactlyOne(t *testing.T) {
	repo := repositories.NewUserRepository(newStore(t))

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := models.User{Name: "Dup", Email: "dup@example.com", Role: models.RoleUser}
			errs <- repo.Create(&u)
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else if !errors.Is(err, repositories.ErrDuplicateEmail) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly 1 create to win, got %d", created)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(all))
	}
}

func TestUserIDsMonotonicAcrossDeletion(t *testing.T) {
	repo := repositories.NewUserRepository(newStore(t))

	a := models.User{Name: "A", Email: "a@x.com", Role: models.RoleUser}
	b := models.User{Name: "B", Email: "b@x.com", Role: models.RoleUser}
	if err := repo.Create(&a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}

	if removed, err := repo.Delete(b.ID); err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}

	// The next id must not reuse the deleted one even though the
	// collection shrank.
	c := models.User{Name: "C", Email: "c@x.com", Role: models.RoleUser}
	if err := repo.Create(&c); err != nil {
		t.Fatal(err)
	}
	if c.ID <= b.ID {
		t.Errorf("id reused after deletion: got %d, previous max %d", c.ID, b.ID)
	}
}

func TestBookingSequenceStartsAboveUserSpace(t *testing.T) {
	repo := repositories.NewBookingRepository(newStore(t))

	b := models.Booking{UserID: 1, Destination: "Bali, Indonesia", Status: models.StatusConfirmed}
	if err := repo.Create(&b); err != nil {
		t.Fatal(err)
	}
	if b.ID != 1001 {
		t.Errorf("first booking id = %d, want 1001", b.ID)
	}
}

func TestSessionLifecycle(t *testing.T) {
	repo := repositories.NewSessionRepository(newStore(t))

	if _, found, err := repo.Get(); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	if err := repo.Put(models.Session{UserID: 7, Role: models.RoleUser}); err != nil {
		t.Fatal(err)
	}
	sess, found, err := repo.Get()
	if err != nil || !found {
		t.Fatalf("after put: found=%v err=%v", found, err)
	}
	if sess.UserID != 7 {
		t.Errorf("session user = %d, want 7", sess.UserID)
	}

	// Put replaces, never accumulates.
	if err := repo.Put(models.Session{UserID: 8, Role: models.RoleAdmin}); err != nil {
		t.Fatal(err)
	}
	sess, _, _ = repo.Get()
	if sess.UserID != 8 {
		t.Errorf("session user = %d, want 8", sess.UserID)
	}

	if err := repo.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := repo.Get(); found {
		t.Error("session survived Clear")
	}
}
