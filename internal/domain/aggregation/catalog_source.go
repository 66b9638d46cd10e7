package aggregation

import (
	"context"
	"errors"
)

var (
	// ErrSourceUnavailable indicates the upstream catalog could not be reached
	ErrSourceUnavailable = errors.New("aggregation: upstream catalog unavailable")
	// ErrSourceInvalidResponse indicates the upstream returned an unparseable body
	ErrSourceInvalidResponse = errors.New("aggregation: invalid upstream response")
	// ErrSourceRequestFailed indicates a non-2xx upstream status
	ErrSourceRequestFailed = errors.New("aggregation: upstream request failed")
)

// CatalogSource is the port interface for one upstream catalog. Concrete
// adapters (FakeStore, DummyJSON, Platzi) live in the infrastructure layer
// and translate each upstream's native schema into canonical records.
type CatalogSource interface {
	// Source returns the provenance tag this adapter handles
	Source() Source

	// FetchProducts lists up to limit products, optionally filtered by the
	// upstream's native category label. Records come back fully canonical:
	// normalized category, populated externalId, deterministic placeholders
	// for fields the upstream omits.
	FetchProducts(ctx context.Context, categoryFilter string, limit int) ([]ProductRecord, error)

	// FetchCategories lists the upstream's raw category labels, unnormalized.
	// Used for UI filter population only.
	FetchCategories(ctx context.Context) ([]string, error)
}

// SearchableCatalogSource is implemented by the single upstream that offers
// native full-text search.
type SearchableCatalogSource interface {
	CatalogSource

	// SearchProducts runs the upstream's native search
	SearchProducts(ctx context.Context, query string, limit int) ([]ProductRecord, error)
}
