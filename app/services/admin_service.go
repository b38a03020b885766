package services

import (
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/collection"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/event"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
)

// Stats is the aggregate dashboard snapshot.
type Stats struct {
	Revenue          float64 `json:"revenue"`
	TotalBookings    int     `json:"total_bookings"`
	ActiveUsers      int     `json:"active_users"`
	PendingInquiries int     `json:"pending_inquiries"`
}

// AdminService derives dashboard metrics and applies user-deletion
// policy.
type AdminService struct {
	users    *repositories.UserRepository
	bookings *repositories.BookingRepository
}

func NewAdminService(users *repositories.UserRepository, bookings *repositories.BookingRepository) *AdminService {
	return &AdminService{users: users, bookings: bookings}
}

// GetStats computes the dashboard aggregates. Revenue counts confirmed
// bookings only; pending inquiries accept the legacy "pending" status
// alongside "pending_quote".
func (s *AdminService) GetStats() (Stats, error) {
	simulateLatency()

	bookings, err := s.bookings.All()
	if err != nil {
		return Stats{}, err
	}
	users, err := s.users.All()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Revenue: collection.Sum(bookings, func(b models.Booking) float64 {
			if b.Status == models.StatusConfirmed {
				return b.Total
			}
			return 0
		}),
		TotalBookings: len(bookings),
		ActiveUsers: collection.Count(users, func(u models.User) bool {
			return u.Role == models.RoleUser
		}),
		PendingInquiries: collection.Count(bookings, func(b models.Booking) bool {
			return b.Status == models.StatusPendingQuote || b.Status == "pending"
		}),
	}, nil
}

// AllUsers returns every registered user in the public shape, so the
// stored password hashes never reach a response body.
func (s *AdminService) AllUsers() ([]models.PublicUser, error) {
	simulateLatency()

	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// DeleteUser removes a non-admin user. Admin accounts are permanently
// protected from this operation regardless of who calls it.
func (s *AdminService) DeleteUser(id int) error {
	simulateLatency()

	target, found, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	if target.IsAdmin() {
		return ErrAdminProtected
	}

	removed, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrUserNotFound
	}

	logger.Info("admin: user deleted", "user_id", id, "email", target.Email)
	event.Fire("user.deleted", target)
	return nil
}
