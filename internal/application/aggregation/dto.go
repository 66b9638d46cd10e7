package aggregation

// CreateProductRequest carries the fields for an authored (manual) product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	Brand       string  `json:"brand"`
	Discount    float64 `json:"discount" binding:"min=0,max=100"`
}

// UpdateProductRequest carries a partial update; nil fields are untouched.
// Source and externalId are immutable and deliberately absent.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	Brand       *string  `json:"brand"`
	Discount    *float64 `json:"discount" binding:"omitempty,min=0,max=100"`
}

// ListProductsQuery narrows a local catalog listing
type ListProductsQuery struct {
	Category string
	Source   string
	Limit    int
	OrderBy  string
	OrderDir string
}
