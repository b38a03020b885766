package services_test

import (
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// testEnv wires every service against a throwaway file store.
type testEnv struct {
	store    store.Store
	users    *repositories.UserRepository
	bookings *repositories.BookingRepository
	messages *repositories.MessageRepository
	sessions *repositories.SessionRepository

	auth       *services.AuthService
	booking    *services.BookingService
	admin      *services.AdminService
	messageSvc *services.MessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}

	users := repositories.NewUserRepository(st)
	bookings := repositories.NewBookingRepository(st)
	messages := repositories.NewMessageRepository(st)
	sessions := repositories.NewSessionRepository(st)

	return &testEnv{
		store:      st,
		users:      users,
		bookings:   bookings,
		messages:   messages,
		sessions:   sessions,
		auth:       services.NewAuthService(users, sessions),
		booking:    services.NewBookingService(bookings, users, sessions),
		admin:      services.NewAdminService(users, bookings),
		messageSvc: services.NewMessageService(messages),
	}
}

// signup + login in one step, returning the user id.
func (e *testEnv) loginAs(t *testing.T, name, email, password string) int {
	t.Helper()

	user, err := e.auth.Signup(name, email, password)
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	if _, _, err := e.auth.Login(email, password); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return user.ID
}
