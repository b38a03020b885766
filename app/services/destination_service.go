package services

import (
	"time"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/cache"
)

const destinationsCacheKey = "terraquest:destinations"

// DestinationService serves the curated destination catalogue. The
// catalogue is static, so it is cached aggressively when Redis is
// available.
type DestinationService struct{}

func NewDestinationService() *DestinationService {
	return &DestinationService{}
}

// All returns the bookable destinations with prices and durations.
func (s *DestinationService) All() []models.Destination {
	var cached []models.Destination
	if cache.Get(destinationsCacheKey, &cached) {
		return cached
	}

	list := models.Catalogue()
	_ = cache.Set(destinationsCacheKey, list, time.Hour)
	return list
}
