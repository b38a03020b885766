package models

// Destination is a bookable trip from the curated catalogue.
type Destination struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	ImageURL string  `json:"image_url"`
}

const fallbackImage = "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?auto=format&fit=crop&w=800"

// Catalogue returns the curated destination list shown on the booking
// page. Prices are per traveler.
func Catalogue() []Destination {
	return []Destination{
		{Name: "Bali, Indonesia", Price: 899, Duration: "7 Days",
			ImageURL: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?auto=format&fit=crop&w=800"},
		{Name: "Paris, France", Price: 1299, Duration: "5 Days",
			ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&w=800"},
		{Name: "Swiss Alps, Switzerland", Price: 1550, Duration: "6 Days",
			ImageURL: "https://images.unsplash.com/photo-1502784444187-359ac186c5bb?auto=format&fit=crop&q=80&w=800"},
		{Name: "Tokyo, Japan", Price: 1200, Duration: "8 Days",
			ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?auto=format&fit=crop&w=800"},
		{Name: "Santorini, Greece", Price: 1200, Duration: "6 Days",
			ImageURL: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?auto=format&fit=crop&w=800"},
		{Name: "Patagonia, Argentina", Price: 1800, Duration: "10 Days",
			ImageURL: "https://images.unsplash.com/photo-1519681393784-d120267933ba?auto=format&fit=crop&q=80&w=800"},
	}
}

// DestinationImage maps a destination name to its catalogue image, with
// a generic travel photo as fallback for free-form destinations.
func DestinationImage(name string) string {
	for _, d := range Catalogue() {
		if d.Name == name {
			return d.ImageURL
		}
	}
	return fallbackImage
}
