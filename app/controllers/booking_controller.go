package controllers

import (
	"errors"
	"net/http"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/bind"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/middleware"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// Store creates a booking for the authenticated user. 201 with the
// booking id, 401 without a valid identity.
func (c *BookingController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	var body services.CreateBookingInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	booking, err := c.service.Create(userID, body)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not create booking")
		return
	}
	response.Created(w, map[string]any{"booking_id": booking.ID, "booking": booking})
}

// Mine lists the authenticated user's bookings, most recent first.
func (c *BookingController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	bookings, err := c.service.ForUser(userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load bookings")
		return
	}
	response.Success(w, bookings)
}
