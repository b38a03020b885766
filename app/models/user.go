// Package models holds the persisted entities of the booking backend.
// Collections are stored wholesale as JSON arrays, so the models carry
// plain json tags rather than ORM metadata.
package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a registered account as persisted. The collection round-trips
// through encoding/json, so the bcrypt hash must carry a real tag here;
// anything leaving the service goes through Public instead.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // bcrypt hash
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// PublicUser is the client-facing shape of an account. It has no
// password field at all, so a hash cannot leak through serialisation.
type PublicUser struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the credential material for API responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Session is the single current authenticated identity. At most one
// session record exists at any time.
type Session struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}
