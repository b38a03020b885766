package services

import (
	"errors"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/jobs"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/auth"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/event"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/metrics"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/queue"
)

// AuthService owns signup, login, session checks and logout.
type AuthService struct {
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewAuthService(users *repositories.UserRepository, sessions *repositories.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Signup registers a new account with the user role. The email must not
// already exist (exact, case-sensitive match).
func (s *AuthService) Signup(name, email, password string) (models.User, error) {
	simulateLatency()

	// Fast path before the bcrypt work. The repository re-checks under
	// its collection lock, which is the authoritative guard.
	if _, exists, err := s.users.FindByEmail(email); err != nil {
		return models.User{}, err
	} else if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	metrics.Signups.Inc()
	event.Fire("user.registered", user)
	if err := queue.Dispatch(&jobs.WelcomeEmail{Name: user.Name, Email: user.Email}); err != nil {
		logger.Warn("signup: welcome email not queued", "error", err)
	}
	return user, nil
}

// Login verifies credentials, replaces the active session and issues a
// bearer token for the HTTP surface.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	simulateLatency()

	user, found, err := s.users.FindByEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if !found || !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := s.sessions.Put(models.Session{UserID: user.ID, Role: user.Role}); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// CheckAuth resolves the active session to its user. A session pointing
// at a deleted user is cleared and reported as guest. This check never
// sleeps: the UI depends on it being immediate.
func (s *AuthService) CheckAuth() (models.User, bool, error) {
	sess, found, err := s.sessions.Get()
	if err != nil || !found {
		return models.User{}, false, err
	}

	user, exists, err := s.users.FindByID(sess.UserID)
	if err != nil {
		return models.User{}, false, err
	}
	if !exists {
		// stale session, self-heal
		if err := s.sessions.Clear(); err != nil {
			return models.User{}, false, err
		}
		return models.User{}, false, nil
	}
	return user, true, nil
}

// UserByID resolves a user id without touching the session. Used by the
// HTTP layer to turn token claims into a user record.
func (s *AuthService) UserByID(id int) (models.User, bool, error) {
	return s.users.FindByID(id)
}

// Logout clears the active session unconditionally.
func (s *AuthService) Logout() error {
	simulateLatency()
	return s.sessions.Clear()
}
