package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/collection"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// bookingSeqFloor keeps booking ids in their own id space, away from
// user ids. The first booking is always 1001.
const bookingSeqFloor = 1000

// BookingRepository owns the booking collection.
type BookingRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewBookingRepository(s store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

func (r *BookingRepository) load() ([]models.Booking, error) {
	var bookings []models.Booking
	if _, err := r.store.Get(store.KeyBookings, &bookings); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return bookings, nil
}

// All returns every booking, most recent first.
func (r *BookingRepository) All() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}
	return sortNewestFirst(bookings), nil
}

// ForUser returns the bookings owned by userID, most recent first.
func (r *BookingRepository) ForUser(userID int) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}
	mine := collection.Filter(bookings, func(b models.Booking) bool {
		return b.UserID == userID
	})
	return sortNewestFirst(mine), nil
}

// Create assigns the next id, stamps CreatedAt and appends the booking.
func (r *BookingRepository) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return err
	}

	id, err := nextSeq(r.store, store.KeyBookings+"_seq", bookingSeqFloor)
	if err != nil {
		return err
	}
	b.ID = id
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	bookings = append(bookings, *b)
	return r.store.Set(store.KeyBookings, bookings)
}

// sortNewestFirst orders bookings by creation time descending. The order
// of bookings created at the same instant is unspecified.
func sortNewestFirst(bookings []models.Booking) []models.Booking {
	return collection.SortBy(bookings, func(a, b models.Booking) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
}
