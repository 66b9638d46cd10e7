package catalog

// platziProduct is a product item as returned by the Platzi fake store API
type platziProduct struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Category    platziCategory `json:"category"`
}

// platziCategory is Platzi's nested category object
type platziCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
