package aggregation

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

// DefaultExternalBudget caps how many live external records a combined
// listing may pull in on top of the local ones
const DefaultExternalBudget = 30

// CombinedResult is a merged local-plus-live product listing
type CombinedResult struct {
	// Products lists local records first, then live external ones
	Products []aggregation.ProductRecord
	// LocalCount is how many of Products came from the local store
	LocalCount int
}

// CombinedService merges the local store with live external listings.
// Local records win: a live record whose externalId is already persisted
// is dropped so a product never appears twice.
type CombinedService struct {
	store          aggregation.ProductStore
	aggregator     *AggregatorService
	externalBudget int
	logger         *zap.Logger
}

// NewCombinedService creates a combined view service. A non-positive
// budget falls back to DefaultExternalBudget.
func NewCombinedService(store aggregation.ProductStore, aggregator *AggregatorService, externalBudget int, logger *zap.Logger) *CombinedService {
	if externalBudget <= 0 {
		externalBudget = DefaultExternalBudget
	}
	return &CombinedService{
		store:          store,
		aggregator:     aggregator,
		externalBudget: externalBudget,
		logger:         logger.Named("combined"),
	}
}

// Combined lists local records matching the filters and, when asked,
// appends live external records fetched under the fixed external budget.
func (s *CombinedService) Combined(ctx context.Context, category string, source string, includeExternal bool, limit int) (*CombinedResult, error) {
	query := aggregation.ProductQuery{
		Category: category,
		Limit:    limit,
	}
	if source != "" && source != aggregation.SourceAll {
		parsed, ok := aggregation.ParseSource(source)
		if !ok {
			return nil, shared.ErrUnknownSource
		}
		query.Source = parsed
	}

	locals, err := s.store.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &CombinedResult{
		Products:   make([]aggregation.ProductRecord, 0, len(locals)),
		LocalCount: len(locals),
	}
	knownExternal := make(map[string]struct{}, len(locals))
	for _, local := range locals {
		result.Products = append(result.Products, local.ToRecord())
		if local.ExternalID != "" {
			knownExternal[local.ExternalID] = struct{}{}
		}
	}

	if !includeExternal {
		return result, nil
	}

	for _, record := range s.aggregator.FetchFromAll(ctx, category, s.externalBudget) {
		if _, synced := knownExternal[record.ExternalID]; synced {
			continue
		}
		result.Products = append(result.Products, record)
	}
	return result, nil
}
