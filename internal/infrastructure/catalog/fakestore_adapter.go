package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// FakeStoreAdapter implements CatalogSource for the FakeStore API.
// FakeStore publishes no stock figures, so canonical records carry the
// deterministic placeholder instead.
type FakeStoreAdapter struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFakeStoreAdapter creates a FakeStore adapter with the given configuration
func NewFakeStoreAdapter(config *Config, logger *zap.Logger) (*FakeStoreAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &FakeStoreAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("fakestore"),
	}, nil
}

// Source returns the provenance tag this adapter handles
func (a *FakeStoreAdapter) Source() aggregation.Source {
	return aggregation.SourceFakeStore
}

// FetchProducts lists products from FakeStore, optionally category-filtered
func (a *FakeStoreAdapter) FetchProducts(ctx context.Context, categoryFilter string, limit int) ([]aggregation.ProductRecord, error) {
	endpoint := a.config.BaseURL + "/products"
	if categoryFilter != "" {
		endpoint += "/category/" + url.PathEscape(categoryFilter)
	}
	endpoint += "?limit=" + strconv.Itoa(limit)

	var items []fakeStoreProduct
	if err := getJSON(ctx, a.httpClient, endpoint, &items); err != nil {
		return nil, err
	}

	records := make([]aggregation.ProductRecord, 0, len(items))
	for _, item := range items {
		records = append(records, a.toRecord(item))
	}
	a.logger.Debug("fetched products", zap.Int("count", len(records)))
	return records, nil
}

// FetchCategories lists FakeStore's raw category labels
func (a *FakeStoreAdapter) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := getJSON(ctx, a.httpClient, a.config.BaseURL+"/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// toRecord maps a FakeStore item to the canonical shape
func (a *FakeStoreAdapter) toRecord(item fakeStoreProduct) aggregation.ProductRecord {
	return aggregation.ProductRecord{
		Name:        item.Title,
		Description: item.Description,
		Price:       decimal.NewFromFloat(item.Price),
		Image:       item.Image,
		Category:    aggregation.NormalizeCategory(item.Category),
		Rating:      clampRating(item.Rating.Rate),
		Stock:       aggregation.DefaultStock,
		Discount:    0,
		Source:      aggregation.SourceFakeStore,
		ExternalID:  aggregation.MakeExternalID(aggregation.SourceFakeStore, fmt.Sprintf("%d", item.ID)),
	}
}

// Ensure FakeStoreAdapter implements CatalogSource
var _ aggregation.CatalogSource = (*FakeStoreAdapter)(nil)
