package controllers

import (
	"net/http"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

type DestinationController struct {
	service *services.DestinationService
}

func NewDestinationController(service *services.DestinationService) *DestinationController {
	return &DestinationController{service: service}
}

// Index lists the curated destination catalogue.
func (c *DestinationController) Index(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, c.service.All())
}
