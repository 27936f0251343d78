package domain

type Venue struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Category    string   `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}
