package services

import (
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/jobs"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/event"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/metrics"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/queue"
)

// BookingService owns booking creation and the booking/user join used by
// the admin views.
type BookingService struct {
	bookings *repositories.BookingRepository
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewBookingService(
	bookings *repositories.BookingRepository,
	users *repositories.UserRepository,
	sessions *repositories.SessionRepository,
) *BookingService {
	return &BookingService{bookings: bookings, users: users, sessions: sessions}
}

// CreateBookingInput is the caller-supplied part of a booking.
type CreateBookingInput struct {
	Destination string  `json:"destination" validate:"required"`
	TravelDate  string  `json:"travel_date" validate:"required,date"`
	Travelers   int     `json:"travelers" validate:"required,integer,gte=1"`
	Total       float64 `json:"total" validate:"nullable,numeric,gte=0"`
	Duration    string  `json:"duration" validate:"nullable"`
}

// Create stores a booking for userID. When userID is zero the owner is
// resolved from the active session; with no session the operation fails.
// A booking without a positive total is stored as a pending quote, an
// inquiry awaiting manual pricing. Otherwise it is confirmed outright.
func (s *BookingService) Create(userID int, in CreateBookingInput) (models.Booking, error) {
	simulateLatency()

	if userID == 0 {
		sess, found, err := s.sessions.Get()
		if err != nil {
			return models.Booking{}, err
		}
		if !found {
			return models.Booking{}, ErrUnauthorized
		}
		userID = sess.UserID
	}

	status := models.StatusConfirmed
	total := in.Total
	if total <= 0 {
		status = models.StatusPendingQuote
		total = 0
	}
	duration := in.Duration
	if duration == "" {
		duration = "Custom"
	}

	booking := models.Booking{
		UserID:      userID,
		Destination: in.Destination,
		TravelDate:  in.TravelDate,
		Travelers:   in.Travelers,
		Total:       total,
		Status:      status,
		Duration:    duration,
	}
	if err := s.bookings.Create(&booking); err != nil {
		return models.Booking{}, err
	}

	metrics.BookingsCreated.WithLabelValues(status).Inc()
	event.Fire("booking.created", booking)
	s.queueConfirmation(booking)
	return booking, nil
}

func (s *BookingService) queueConfirmation(b models.Booking) {
	owner, found, err := s.users.FindByID(b.UserID)
	if err != nil || !found {
		return
	}
	job := &jobs.BookingConfirmation{
		Email:       owner.Email,
		Destination: b.Destination,
		Total:       b.Total,
		Status:      b.Status,
	}
	if err := queue.Dispatch(job); err != nil {
		logger.Warn("booking: confirmation email not queued", "error", err)
	}
}

// ForUser returns userID's bookings, most recent first. When userID is
// zero the owner is resolved from the active session; with no session
// the list is empty.
func (s *BookingService) ForUser(userID int) ([]models.Booking, error) {
	simulateLatency()

	if userID == 0 {
		sess, found, err := s.sessions.Get()
		if err != nil {
			return nil, err
		}
		if !found {
			return []models.Booking{}, nil
		}
		userID = sess.UserID
	}
	bookings, err := s.bookings.ForUser(userID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// AllWithUsers left-joins every booking against the user collection,
// most recent first. Bookings whose owner was deleted keep their
// "Unknown" placeholders rather than failing.
func (s *BookingService) AllWithUsers() ([]models.BookingWithUser, error) {
	simulateLatency()

	bookings, err := s.bookings.All()
	if err != nil {
		return nil, err
	}
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	joined := make([]models.BookingWithUser, 0, len(bookings))
	for _, b := range bookings {
		row := models.BookingWithUser{
			Booking:   b,
			UserName:  "Unknown",
			UserEmail: "Unknown",
			ImageURL:  models.DestinationImage(b.Destination),
		}
		if u, ok := byID[b.UserID]; ok {
			row.UserName = u.Name
			row.UserEmail = u.Email
		}
		joined = append(joined, row)
	}
	return joined, nil
}
