package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/auth"
)

func TestSignupAssignsUserRole(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	all, err := env.users.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSignupGrowsCollectionByOne(t *testing.T) {
	env := newTestEnv(t)

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for i, email := range emails {
		_, err := env.auth.Signup("User", email, "secret123")
		require.NoError(t, err)

		all, err := env.users.All()
		require.NoError(t, err)
		assert.Len(t, all, i+1)
	}
}

func TestSignupDuplicateEmailFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = env.auth.Signup("Imposter", "ada@example.com", "different")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	// The failed signup must leave the collection unchanged.
	all, err := env.users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].Name)
}

func TestSignupEmailMatchIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	// Different case is a different email as stored.
	_, err = env.auth.Signup("Ada", "Ada@example.com", "secret123")
	assert.NoError(t, err)
}

func TestPasswordsAreHashed(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestPasswordHashSurvivesPersistence(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	// Read back through the store round-trip, not the struct Signup
	// returned: the hash must survive JSON serialisation.
	stored, found, err := env.users.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestConcurrentSignupSameEmailCreatesOneAccount(t *testing.T) {
	env := newTestEnv(t)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.auth.Signup("Dup", "dup@example.com", "secret123")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	}
	assert.Equal(t, 1, successes)

	all, err := env.users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "dup@example.com", all[0].Email)
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	user, token, err := env.auth.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)

	// The session must resolve to the same identity immediately after.
	current, authenticated, err := env.auth.CheckAuth()
	require.NoError(t, err)
	require.True(t, authenticated)
	assert.Equal(t, created.ID, current.ID)
}

func TestLoginFailsWithWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = env.auth.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = env.auth.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "Ada", "ada@example.com", "secret123")

	require.NoError(t, env.auth.Logout())

	_, authenticated, err := env.auth.CheckAuth()
	require.NoError(t, err)
	assert.False(t, authenticated)

	// Logging out twice is harmless.
	assert.NoError(t, env.auth.Logout())
}

func TestStaleSessionSelfHeals(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "Ada", "ada@example.com", "secret123")

	// Point the session at a user that does not exist.
	require.NoError(t, env.sessions.Put(models.Session{UserID: 9999, Role: models.RoleUser}))

	_, authenticated, err := env.auth.CheckAuth()
	require.NoError(t, err)
	assert.False(t, authenticated)

	// The dangling record must be gone, not just ignored.
	_, found, err := env.sessions.Get()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	env := newTestEnv(t)

	first := env.loginAs(t, "Ada", "ada@example.com", "secret123")
	second := env.loginAs(t, "Bob", "bob@example.com", "secret456")
	require.NotEqual(t, first, second)

	current, authenticated, err := env.auth.CheckAuth()
	require.NoError(t, err)
	require.True(t, authenticated)
	assert.Equal(t, second, current.ID)
}
