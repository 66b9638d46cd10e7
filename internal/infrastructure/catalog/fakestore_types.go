package catalog

// fakeStoreProduct is a product item as returned by the FakeStore API
type fakeStoreProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      fakeStoreRating `json:"rating"`
}

// fakeStoreRating is the nested rating object FakeStore attaches to items
type fakeStoreRating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}
