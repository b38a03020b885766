package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

// AdminController serves the dashboard endpoints. The routes mounting it
// are already guarded by auth and role middleware.
type AdminController struct {
	admin    *services.AdminService
	bookings *services.BookingService
	messages *services.MessageService
}

func NewAdminController(
	admin *services.AdminService,
	bookings *services.BookingService,
	messages *services.MessageService,
) *AdminController {
	return &AdminController{admin: admin, bookings: bookings, messages: messages}
}

// Stats returns the aggregate dashboard numbers.
func (c *AdminController) Stats(w http.ResponseWriter, _ *http.Request) {
	stats, err := c.admin.GetStats()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.Success(w, stats)
}

// Bookings lists every booking joined with its owner's display fields.
func (c *AdminController) Bookings(w http.ResponseWriter, _ *http.Request) {
	list, err := c.bookings.AllWithUsers()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load bookings")
		return
	}
	response.Success(w, list)
}

// Users lists every registered user.
func (c *AdminController) Users(w http.ResponseWriter, _ *http.Request) {
	users, err := c.admin.AllUsers()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	response.Success(w, users)
}

// DeleteUser removes a user. 404 for an unknown id, 409 when the target
// is an admin.
func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	switch err := c.admin.DeleteUser(id); {
	case err == nil:
		response.NoContent(w)
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrAdminProtected):
		response.Conflict(w, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "could not delete user")
	}
}

// Messages lists the contact-form inbox, most recent first.
func (c *AdminController) Messages(w http.ResponseWriter, _ *http.Request) {
	msgs, err := c.messages.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load messages")
		return
	}
	response.Success(w, msgs)
}
