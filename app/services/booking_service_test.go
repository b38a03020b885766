package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
)

func TestCreateBookingZeroTotalIsPendingQuote(t *testing.T) {
	env := newTestEnv(t)
	userID := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	booking, err := env.booking.Create(userID, services.CreateBookingInput{
		Destination: "Bali, Indonesia",
		TravelDate:  "2026-10-01",
		Travelers:   2,
		Total:       0,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingQuote, booking.Status)
	assert.Zero(t, booking.Total)
}

func TestCreateBookingPositiveTotalIsConfirmed(t *testing.T) {
	env := newTestEnv(t)
	userID := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	booking, err := env.booking.Create(userID, services.CreateBookingInput{
		Destination: "Paris, France",
		TravelDate:  "2026-10-01",
		Travelers:   1,
		Total:       1299,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, 1299.0, booking.Total)
}

func TestCreateBookingDefaultsDurationToCustom(t *testing.T) {
	env := newTestEnv(t)
	userID := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	booking, err := env.booking.Create(userID, services.CreateBookingInput{
		Destination: "Somewhere Else",
		TravelDate:  "2026-10-01",
		Travelers:   1,
		Total:       500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom", booking.Duration)
}

func TestCreateBookingIDsStartAt1001(t *testing.T) {
	env := newTestEnv(t)
	userID := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	first, err := env.booking.Create(userID, services.CreateBookingInput{
		Destination: "Bali, Indonesia", TravelDate: "2026-10-01", Travelers: 1, Total: 899,
	})
	require.NoError(t, err)
	assert.Equal(t, 1001, first.ID)

	second, err := env.booking.Create(userID, services.CreateBookingInput{
		Destination: "Tokyo, Japan", TravelDate: "2026-11-01", Travelers: 1, Total: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, 1002, second.ID)
}

func TestCreateBookingWithoutSessionFails(t *testing.T) {
	env := newTestEnv(t)

	// userID zero resolves from the session, and there is none.
	_, err := env.booking.Create(0, services.CreateBookingInput{
		Destination: "Bali, Indonesia", TravelDate: "2026-10-01", Travelers: 1, Total: 899,
	})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestCreateBookingResolvesSessionOwner(t *testing.T) {
	env := newTestEnv(t)
	userID := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	booking, err := env.booking.Create(0, services.CreateBookingInput{
		Destination: "Bali, Indonesia", TravelDate: "2026-10-01", Travelers: 1, Total: 899,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, booking.UserID)
}

func TestForUserReturnsOwnBookingsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ada := env.loginAs(t, "Ada", "ada@example.com", "secret123")
	bob := env.loginAs(t, "Bob", "bob@example.com", "secret456")

	seedBooking(t, env, ada, "Bali, Indonesia", time.Now().Add(-2*time.Hour))
	seedBooking(t, env, bob, "Paris, France", time.Now().Add(-time.Hour))
	seedBooking(t, env, ada, "Tokyo, Japan", time.Now())

	mine, err := env.booking.ForUser(ada)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Tokyo, Japan", mine[0].Destination)
	assert.Equal(t, "Bali, Indonesia", mine[1].Destination)
	for _, b := range mine {
		assert.Equal(t, ada, b.UserID)
	}
}

func TestForUserWithoutSessionIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	mine, err := env.booking.ForUser(0)
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.NotNil(t, mine)
}

func TestAllWithUsersJoinsOwnerFields(t *testing.T) {
	env := newTestEnv(t)
	ada := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	seedBooking(t, env, ada, "Bali, Indonesia", time.Now())

	all, err := env.booking.AllWithUsers()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].UserName)
	assert.Equal(t, "ada@example.com", all[0].UserEmail)
}

func TestAllWithUsersMissingOwnerIsUnknown(t *testing.T) {
	env := newTestEnv(t)
	ada := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	seedBooking(t, env, ada, "Bali, Indonesia", time.Now())

	removed, err := env.users.Delete(ada)
	require.NoError(t, err)
	require.True(t, removed)

	all, err := env.booking.AllWithUsers()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Unknown", all[0].UserName)
	assert.Equal(t, "Unknown", all[0].UserEmail)
}

func TestAllWithUsersCarriesDestinationImage(t *testing.T) {
	env := newTestEnv(t)
	ada := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	seedBooking(t, env, ada, "Bali, Indonesia", time.Now())
	seedBooking(t, env, ada, "Grandma's Village", time.Now().Add(-time.Hour))

	all, err := env.booking.AllWithUsers()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, models.DestinationImage("Bali, Indonesia"), all[0].ImageURL)
	assert.Contains(t, all[0].ImageURL, "photo-1537996194471")

	// Free-form destinations fall back to the generic travel photo.
	assert.NotEmpty(t, all[1].ImageURL)
	assert.NotEqual(t, all[0].ImageURL, all[1].ImageURL)
}

func TestAllWithUsersSortedNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ada := env.loginAs(t, "Ada", "ada@example.com", "secret123")

	seedBooking(t, env, ada, "Oldest", time.Now().Add(-3*time.Hour))
	seedBooking(t, env, ada, "Newest", time.Now())
	seedBooking(t, env, ada, "Middle", time.Now().Add(-time.Hour))

	all, err := env.booking.AllWithUsers()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Newest", all[0].Destination)
	assert.Equal(t, "Middle", all[1].Destination)
	assert.Equal(t, "Oldest", all[2].Destination)
}

// seedBooking inserts directly through the repository so tests can pick
// their own creation times.
func seedBooking(t *testing.T, env *testEnv, userID int, destination string, createdAt time.Time) {
	t.Helper()
	b := models.Booking{
		UserID:      userID,
		Destination: destination,
		TravelDate:  "2026-10-01",
		Travelers:   1,
		Total:       100,
		Status:      models.StatusConfirmed,
		Duration:    "Custom",
		CreatedAt:   createdAt,
	}
	if err := env.bookings.Create(&b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
}
