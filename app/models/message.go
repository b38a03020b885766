package models

import "time"

// Contact message statuses. Messages are created unread; there is no
// transition operation yet.
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// ContactMessage is a submission from the contact form.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
