package seeders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/database/seeders"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

func newStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestRunIfEmptySeedsFreshStore(t *testing.T) {
	st := newStore(t)

	require.NoError(t, seeders.RunIfEmpty(st))

	users := repositories.NewUserRepository(st)
	admin, found, err := users.FindByEmail(config.AdminEmail())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.Password)
}

func TestRunIfEmptySecondCallIsNoOp(t *testing.T) {
	st := newStore(t)

	require.NoError(t, seeders.RunIfEmpty(st))
	require.NoError(t, seeders.RunIfEmpty(st))

	all, err := repositories.NewUserRepository(st).All()
	require.NoError(t, err)
	assert.Len(t, all, 2) // admin + demo user
}

func TestRunIfEmptySkipsInitialisedStore(t *testing.T) {
	st := newStore(t)

	// A written-but-empty collection means every account was removed
	// deliberately; bootstrap must not resurrect them.
	require.NoError(t, st.Set(store.KeyUsers, []models.User{}))
	require.NoError(t, seeders.RunIfEmpty(st))

	all, err := repositories.NewUserRepository(st).All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
