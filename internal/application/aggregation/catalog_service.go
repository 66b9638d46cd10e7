package aggregation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

// CatalogService manages the local product store: authored (manual)
// records plus bulk maintenance of previously synced ones.
type CatalogService struct {
	store  aggregation.ProductStore
	logger *zap.Logger
}

// NewCatalogService creates a catalog service
func NewCatalogService(store aggregation.ProductStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger.Named("catalog"),
	}
}

// Create persists an authored product. Authored records carry the manual
// source tag and never an external ID.
func (s *CatalogService) Create(ctx context.Context, req CreateProductRequest) (*aggregation.StoreProduct, error) {
	record := aggregation.ProductRecord{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Image:       req.Image,
		Category:    aggregation.NormalizeCategory(req.Category),
		Rating:      req.Rating,
		Stock:       req.Quantity,
		Brand:       req.Brand,
		Discount:    req.Discount,
		Source:      aggregation.SourceManual,
	}
	product, err := aggregation.NewStoreProduct(record)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.String("id", product.ID.String()))
	return product, nil
}

// List returns local records matching the query
func (s *CatalogService) List(ctx context.Context, query ListProductsQuery) ([]aggregation.StoreProduct, error) {
	q := aggregation.ProductQuery{
		Category: query.Category,
		Limit:    query.Limit,
		OrderBy:  query.OrderBy,
		OrderDir: query.OrderDir,
	}
	if query.Source != "" && query.Source != aggregation.SourceAll {
		parsed, ok := aggregation.ParseSource(query.Source)
		if !ok {
			return nil, shared.ErrUnknownSource
		}
		q.Source = parsed
	}
	return s.store.FindAll(ctx, q)
}

// Get fetches one local record
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*aggregation.StoreProduct, error) {
	return s.store.FindByID(ctx, id)
}

// Update applies a partial update to a local record. Provenance fields
// stay as persisted.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*aggregation.StoreProduct, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Category != nil {
		product.Category = aggregation.NormalizeCategory(*req.Category)
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}
	record := product.ToRecord()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes one local record
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// ClearBySource bulk-removes imported records of one source. Authored
// records cannot be cleared this way.
func (s *CatalogService) ClearBySource(ctx context.Context, source string) (int64, error) {
	parsed, ok := aggregation.ParseSource(source)
	if !ok || !parsed.IsExternal() {
		return 0, shared.ErrUnknownSource
	}
	removed, err := s.store.DeleteBySource(ctx, parsed)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cleared imported products",
		zap.String("source", source), zap.Int64("removed", removed))
	return removed, nil
}
