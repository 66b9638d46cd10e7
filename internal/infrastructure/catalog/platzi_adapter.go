package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// PlatziAdapter implements CatalogSource for the Platzi fake store API.
// Platzi addresses categories by numeric ID rather than by label, so a
// category-filtered fetch first resolves the label against the upstream
// category list. Platzi publishes neither ratings nor stock; canonical
// records carry the deterministic placeholders.
type PlatziAdapter struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPlatziAdapter creates a Platzi adapter with the given configuration
func NewPlatziAdapter(config *Config, logger *zap.Logger) (*PlatziAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &PlatziAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("platzi"),
	}, nil
}

// Source returns the provenance tag this adapter handles
func (a *PlatziAdapter) Source() aggregation.Source {
	return aggregation.SourcePlatzi
}

// FetchProducts lists products from Platzi, optionally category-filtered
func (a *PlatziAdapter) FetchProducts(ctx context.Context, categoryFilter string, limit int) ([]aggregation.ProductRecord, error) {
	endpoint := fmt.Sprintf("%s/products?offset=0&limit=%d", a.config.BaseURL, limit)
	if categoryFilter != "" {
		categoryID, err := a.resolveCategoryID(ctx, categoryFilter)
		if err != nil {
			return nil, err
		}
		endpoint = fmt.Sprintf("%s/categories/%d/products?offset=0&limit=%d", a.config.BaseURL, categoryID, limit)
	}

	var items []platziProduct
	if err := getJSON(ctx, a.httpClient, endpoint, &items); err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}

	records := make([]aggregation.ProductRecord, 0, len(items))
	for _, item := range items {
		records = append(records, a.toRecord(item))
	}
	a.logger.Debug("fetched products", zap.Int("count", len(records)))
	return records, nil
}

// FetchCategories lists Platzi's raw category names
func (a *PlatziAdapter) FetchCategories(ctx context.Context) ([]string, error) {
	categories, err := a.fetchCategoryObjects(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// resolveCategoryID maps a raw category label to Platzi's numeric category ID
func (a *PlatziAdapter) resolveCategoryID(ctx context.Context, label string) (int64, error) {
	categories, err := a.fetchCategoryObjects(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, label) {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", aggregation.ErrSourceRequestFailed, label)
}

func (a *PlatziAdapter) fetchCategoryObjects(ctx context.Context) ([]platziCategory, error) {
	var categories []platziCategory
	if err := getJSON(ctx, a.httpClient, a.config.BaseURL+"/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// toRecord maps a Platzi item to the canonical shape
func (a *PlatziAdapter) toRecord(item platziProduct) aggregation.ProductRecord {
	image := ""
	if len(item.Images) > 0 {
		image = item.Images[0]
	}
	return aggregation.ProductRecord{
		Name:        item.Title,
		Description: item.Description,
		Price:       decimal.NewFromFloat(item.Price),
		Image:       image,
		Category:    aggregation.NormalizeCategory(item.Category.Name),
		Rating:      0,
		Stock:       aggregation.DefaultStock,
		Discount:    0,
		Source:      aggregation.SourcePlatzi,
		ExternalID:  aggregation.MakeExternalID(aggregation.SourcePlatzi, fmt.Sprintf("%d", item.ID)),
	}
}

// Ensure PlatziAdapter implements CatalogSource
var _ aggregation.CatalogSource = (*PlatziAdapter)(nil)
