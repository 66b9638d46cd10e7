package dto

// Response shapes for the external catalog endpoints. These are consumed by
// the storefront/admin frontend and keep a flat top-level layout rather than
// the generic data envelope.

// ExternalProductsResponse is the payload for aggregator fetches
type ExternalProductsResponse struct {
	Success  bool                 `json:"success"`
	Count    int                  `json:"count"`
	Source   string               `json:"source"`
	Products []ExternalProductDTO `json:"products"`
}

// ExternalCategoriesResponse is the payload for category listings
type ExternalCategoriesResponse struct {
	Success    bool     `json:"success"`
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// ExternalSearchResponse is the payload for upstream catalog search
type ExternalSearchResponse struct {
	Success  bool                 `json:"success"`
	Count    int                  `json:"count"`
	Query    string               `json:"query"`
	Products []ExternalProductDTO `json:"products"`
}

// CombinedProductsResponse merges locally persisted products with live
// external records; DBCount says how many of the products are local
type CombinedProductsResponse struct {
	Success  bool                 `json:"success"`
	Count    int                  `json:"count"`
	DBCount  int                  `json:"dbCount"`
	Products []ExternalProductDTO `json:"products"`
}

// SyncRequest is the body for the sync endpoint
type SyncRequest struct {
	Source   string `json:"source" binding:"required"`
	Category string `json:"category"`
	Limit    int    `json:"limit" binding:"omitempty,min=1,max=100"`
}

// SyncResponse reports the outcome of a sync run
type SyncResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Synced   int               `json:"synced"`
	Skipped  int               `json:"skipped"`
	Products []StoreProductDTO `json:"products"`
}

// ClearResponse reports the outcome of a bulk clear-by-source
type ClearResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
