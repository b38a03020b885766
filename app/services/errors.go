// Package services implements the business rules of the booking backend.
// Services return sentinel errors from this file; the controllers map
// them onto HTTP statuses.
package services

import (
	"errors"
	"time"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
)

var (
	// ErrEmailTaken is returned by signup when the email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by login when no user matches the
	// given email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when an operation requires an active
	// session and none exists.
	ErrUnauthorized = errors.New("authentication required")

	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdminProtected is returned when deletion targets an admin
	// account. Admins can not be deleted through this operation, the
	// caller included.
	ErrAdminProtected = errors.New("admin accounts cannot be deleted")
)

// simulateLatency reproduces the artificial network delay of the
// original client build. It is off by default (SIMULATED_LATENCY=0) and
// never applies to the auth check, which the UI needs to be immediate.
func simulateLatency() {
	if d := config.SimulatedLatency(); d > 0 {
		time.Sleep(d)
	}
}
