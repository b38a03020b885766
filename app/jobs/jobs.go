// Package jobs defines the background jobs queued by the services so
// that email delivery never blocks a request.
package jobs

import (
	"fmt"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/mail"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/queue"
)

// RegisterAll registers every job type with the queue. Call once at boot,
// before workers start.
func RegisterAll() {
	queue.Register("*jobs.WelcomeEmail", func() queue.Job { return &WelcomeEmail{} })
	queue.Register("*jobs.BookingConfirmation", func() queue.Job { return &BookingConfirmation{} })
	queue.Register("*jobs.ContactNotification", func() queue.Job { return &ContactNotification{} })
}

// WelcomeEmail greets a freshly registered user.
type WelcomeEmail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (j *WelcomeEmail) Handle() error {
	return mail.To(j.Email).
		Subject("Welcome to TerraQuest!").
		Body(fmt.Sprintf("<h1>Hi %s</h1><p>Your account is ready. Where to first?</p>", j.Name)).
		Send()
}

// BookingConfirmation acknowledges a new booking or quote request.
type BookingConfirmation struct {
	Email       string  `json:"email"`
	Destination string  `json:"destination"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}

func (j *BookingConfirmation) Handle() error {
	subject := fmt.Sprintf("Booking confirmed: %s", j.Destination)
	body := fmt.Sprintf("<p>Your trip to %s is confirmed. Total: $%.2f.</p>", j.Destination, j.Total)
	if j.Status != "confirmed" {
		subject = fmt.Sprintf("Quote request received: %s", j.Destination)
		body = fmt.Sprintf("<p>We received your quote request for %s and will follow up with pricing.</p>", j.Destination)
	}
	return mail.To(j.Email).Subject(subject).Body(body).Send()
}

// ContactNotification forwards a contact-form submission to the admin
// inbox.
type ContactNotification struct {
	AdminEmail string `json:"admin_email"`
	FromName   string `json:"from_name"`
	FromEmail  string `json:"from_email"`
	Message    string `json:"message"`
}

func (j *ContactNotification) Handle() error {
	return mail.To(j.AdminEmail).
		Subject(fmt.Sprintf("New contact message from %s", j.FromName)).
		Text(fmt.Sprintf("From: %s <%s>\n\n%s", j.FromName, j.FromEmail, j.Message)).
		Send()
}
