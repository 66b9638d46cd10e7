package catalog

// dummyJSONProductList is the paginated envelope DummyJSON wraps product
// listings in
type dummyJSONProductList struct {
	Products []dummyJSONProduct `json:"products"`
	Total    int64              `json:"total"`
	Skip     int64              `json:"skip"`
	Limit    int64              `json:"limit"`
}

// dummyJSONProduct is a product item as returned by the DummyJSON API
type dummyJSONProduct struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}
