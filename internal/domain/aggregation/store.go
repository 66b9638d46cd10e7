package aggregation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// StoreProduct is a durable product record in the local store. Synced
// records acquire a store-assigned ID on top of their externalId; manual
// records only ever have the store-assigned ID.
type StoreProduct struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Rating      float64
	Quantity    int
	Brand       string
	Discount    float64
	Source      Source
	// ExternalID is immutable once persisted; empty for manual/api records
	ExternalID string
}

// NewStoreProduct builds a durable record from a canonical one. The
// upstream's listed stock becomes the persisted quantity, defaulting when
// the upstream listed none.
func NewStoreProduct(record ProductRecord) (*StoreProduct, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	quantity := record.Stock
	if quantity == 0 {
		quantity = DefaultStock
	}
	return &StoreProduct{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        record.Name,
		Description: record.Description,
		Price:       record.Price,
		Image:       record.Image,
		Category:    record.Category,
		Rating:      record.Rating,
		Quantity:    quantity,
		Brand:       record.Brand,
		Discount:    record.Discount,
		Source:      record.Source,
		ExternalID:  record.ExternalID,
	}, nil
}

// ToRecord converts the durable record back to the canonical shape
func (p *StoreProduct) ToRecord() ProductRecord {
	return ProductRecord{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating,
		Stock:       p.Quantity,
		Brand:       p.Brand,
		Discount:    p.Discount,
		Source:      p.Source,
		ExternalID:  p.ExternalID,
	}
}

// ProductQuery narrows local store reads
type ProductQuery struct {
	// Category filters on the canonical category label, empty for all
	Category string
	// Source filters on provenance, empty for all
	Source Source
	// Limit caps the result size, 0 for the store default
	Limit int
	// OrderBy names the sort column, empty for the store default
	OrderBy string
	// OrderDir is "asc" or "desc", empty for the store default
	OrderDir string
}

// ProductStore is the persistence collaborator port. Implementations must
// enforce sparse uniqueness of ExternalID: inserting a record whose
// non-empty ExternalID already exists reports shared.ErrDuplicateExternal
// instead of creating a second row.
type ProductStore interface {
	// ExistsByExternalID reports whether a record with the given external ID
	// is already persisted
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)

	// Insert persists a new record. Conflicts on ExternalID surface as
	// shared.ErrDuplicateExternal.
	Insert(ctx context.Context, product *StoreProduct) error

	// FindAll lists persisted records matching the query
	FindAll(ctx context.Context, query ProductQuery) ([]StoreProduct, error)

	// FindByID fetches one persisted record
	FindByID(ctx context.Context, id uuid.UUID) (*StoreProduct, error)

	// Save updates an existing record
	Save(ctx context.Context, product *StoreProduct) error

	// Delete removes one persisted record
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySource bulk-removes every record imported from the given
	// source, returning the number of rows removed
	DeleteBySource(ctx context.Context, source Source) (int64, error)
}
