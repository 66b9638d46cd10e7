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

// DummyJSONAdapter implements CatalogSource for the DummyJSON API. It is
// the one upstream with native full-text search.
type DummyJSONAdapter struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDummyJSONAdapter creates a DummyJSON adapter with the given configuration
func NewDummyJSONAdapter(config *Config, logger *zap.Logger) (*DummyJSONAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &DummyJSONAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("dummyjson"),
	}, nil
}

// Source returns the provenance tag this adapter handles
func (a *DummyJSONAdapter) Source() aggregation.Source {
	return aggregation.SourceDummyJSON
}

// FetchProducts lists products from DummyJSON, optionally category-filtered
func (a *DummyJSONAdapter) FetchProducts(ctx context.Context, categoryFilter string, limit int) ([]aggregation.ProductRecord, error) {
	endpoint := a.config.BaseURL + "/products"
	if categoryFilter != "" {
		endpoint += "/category/" + url.PathEscape(categoryFilter)
	}
	endpoint += "?limit=" + strconv.Itoa(limit)

	var list dummyJSONProductList
	if err := getJSON(ctx, a.httpClient, endpoint, &list); err != nil {
		return nil, err
	}

	records := make([]aggregation.ProductRecord, 0, len(list.Products))
	for _, item := range list.Products {
		records = append(records, a.toRecord(item))
	}
	a.logger.Debug("fetched products", zap.Int("count", len(records)))
	return records, nil
}

// FetchCategories lists DummyJSON's raw category slugs
func (a *DummyJSONAdapter) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := getJSON(ctx, a.httpClient, a.config.BaseURL+"/products/category-list", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchProducts runs DummyJSON's native full-text search
func (a *DummyJSONAdapter) SearchProducts(ctx context.Context, query string, limit int) ([]aggregation.ProductRecord, error) {
	endpoint := fmt.Sprintf("%s/products/search?q=%s&limit=%d",
		a.config.BaseURL, url.QueryEscape(query), limit)

	var list dummyJSONProductList
	if err := getJSON(ctx, a.httpClient, endpoint, &list); err != nil {
		return nil, err
	}

	records := make([]aggregation.ProductRecord, 0, len(list.Products))
	for _, item := range list.Products {
		records = append(records, a.toRecord(item))
	}
	return records, nil
}

// toRecord maps a DummyJSON item to the canonical shape
func (a *DummyJSONAdapter) toRecord(item dummyJSONProduct) aggregation.ProductRecord {
	stock := item.Stock
	if stock < 0 {
		stock = 0
	}
	discount := item.DiscountPercentage
	if discount < 0 {
		discount = 0
	} else if discount > 100 {
		discount = 100
	}
	return aggregation.ProductRecord{
		Name:        item.Title,
		Description: item.Description,
		Price:       decimal.NewFromFloat(item.Price),
		Image:       item.Thumbnail,
		Category:    aggregation.NormalizeCategory(item.Category),
		Rating:      clampRating(item.Rating),
		Stock:       stock,
		Brand:       item.Brand,
		Discount:    discount,
		Source:      aggregation.SourceDummyJSON,
		ExternalID:  aggregation.MakeExternalID(aggregation.SourceDummyJSON, fmt.Sprintf("%d", item.ID)),
	}
}

// Ensure DummyJSONAdapter implements SearchableCatalogSource
var _ aggregation.SearchableCatalogSource = (*DummyJSONAdapter)(nil)
