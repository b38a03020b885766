package controllers

import (
	"net/http"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/bind"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

type MessageController struct {
	service *services.MessageService
}

func NewMessageController(service *services.MessageService) *MessageController {
	return &MessageController{service: service}
}

// Store saves a contact-form submission. Always 201 for valid input.
func (c *MessageController) Store(w http.ResponseWriter, r *http.Request) {
	var body services.SaveMessageInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	msg, err := c.service.Save(body)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save message")
		return
	}
	response.Created(w, msg)
}
