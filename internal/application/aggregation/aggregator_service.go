package aggregation

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// categoriesCacheKey is the cache key for the merged all-sources category list
const categoriesCacheKey = "external:categories:all"

// CategoryCache is an optional read-through cache for upstream category
// lists. Implementations are expected to fail soft: a miss and a cache
// error look the same to the aggregator.
type CategoryCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, values []string)
}

// AggregatorService fans product fetches out to the registered catalog
// adapters. All multi-source operations join every branch before returning
// and reassemble results in the fixed source registration order, so output
// order is deterministic no matter which upstream answers first.
type AggregatorService struct {
	adapters map[aggregation.Source]aggregation.CatalogSource
	order    []aggregation.Source
	searcher aggregation.SearchableCatalogSource
	cache    CategoryCache
	logger   *zap.Logger
}

// AggregatorOption is a functional option for AggregatorService
type AggregatorOption func(*AggregatorService)

// WithCategoryCache attaches a category list cache
func WithCategoryCache(cache CategoryCache) AggregatorOption {
	return func(s *AggregatorService) {
		s.cache = cache
	}
}

// NewAggregatorService creates an aggregator over the given adapters.
// Registration order follows aggregation.ExternalSources; the first adapter
// implementing SearchableCatalogSource serves the search path.
func NewAggregatorService(sources []aggregation.CatalogSource, logger *zap.Logger, opts ...AggregatorOption) *AggregatorService {
	s := &AggregatorService{
		adapters: make(map[aggregation.Source]aggregation.CatalogSource, len(sources)),
		logger:   logger.Named("aggregator"),
	}
	for _, src := range sources {
		s.adapters[src.Source()] = src
		if s.searcher == nil {
			if searchable, ok := src.(aggregation.SearchableCatalogSource); ok {
				s.searcher = searchable
			}
		}
	}
	for _, source := range aggregation.ExternalSources() {
		if _, ok := s.adapters[source]; ok {
			s.order = append(s.order, source)
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchFromSource fetches canonical records from exactly one source. An
// unrecognized or unregistered source is a logged no-op returning an empty
// list, so unchecked user input can be passed through safely.
func (s *AggregatorService) FetchFromSource(ctx context.Context, source aggregation.Source, categoryFilter string, limit int) []aggregation.ProductRecord {
	adapter, ok := s.adapters[source]
	if !ok {
		s.logger.Warn("fetch from unknown source ignored", zap.String("source", source.String()))
		return []aggregation.ProductRecord{}
	}
	return s.fetchSoft(ctx, adapter, categoryFilter, limit)
}

// FetchFromAll fetches from every registered adapter concurrently. The
// total limit is split evenly (floor division; the remainder is simply not
// requested) and results are concatenated in registration order. A failing
// adapter contributes an empty block instead of failing the call.
func (s *AggregatorService) FetchFromAll(ctx context.Context, categoryFilter string, totalLimit int) []aggregation.ProductRecord {
	if len(s.order) == 0 {
		return []aggregation.ProductRecord{}
	}
	perSource := totalLimit / len(s.order)
	if perSource <= 0 {
		return []aggregation.ProductRecord{}
	}

	blocks := make([][]aggregation.ProductRecord, len(s.order))
	var g errgroup.Group
	for i, source := range s.order {
		i := i
		adapter := s.adapters[source]
		g.Go(func() error {
			blocks[i] = s.fetchSoft(ctx, adapter, categoryFilter, perSource)
			return nil
		})
	}
	// Branches never return errors; Wait is a join-all barrier.
	_ = g.Wait()

	merged := make([]aggregation.ProductRecord, 0, totalLimit)
	for _, block := range blocks {
		merged = append(merged, block...)
	}
	return merged
}

// FetchCategories lists raw category labels for one source, or the merged
// deduplicated labels of every source for aggregation.SourceAll. Labels are
// deduplicated case-sensitively and never normalized.
func (s *AggregatorService) FetchCategories(ctx context.Context, source string) []string {
	if source != aggregation.SourceAll {
		adapter, ok := s.adapters[aggregation.Source(source)]
		if !ok {
			s.logger.Warn("categories for unknown source ignored", zap.String("source", source))
			return []string{}
		}
		categories, err := adapter.FetchCategories(ctx)
		if err != nil {
			s.logger.Error("category fetch failed",
				zap.String("source", adapter.Source().String()), zap.Error(err))
			return []string{}
		}
		return categories
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, categoriesCacheKey); ok {
			return cached
		}
	}

	blocks := make([][]string, len(s.order))
	var g errgroup.Group
	for i, src := range s.order {
		i := i
		adapter := s.adapters[src]
		g.Go(func() error {
			categories, err := adapter.FetchCategories(ctx)
			if err != nil {
				s.logger.Error("category fetch failed",
					zap.String("source", adapter.Source().String()), zap.Error(err))
				return nil
			}
			blocks[i] = categories
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, block := range blocks {
		for _, label := range block {
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			merged = append(merged, label)
		}
	}

	if s.cache != nil && len(merged) > 0 {
		s.cache.Set(ctx, categoriesCacheKey, merged)
	}
	return merged
}

// Search delegates to the single upstream offering native search. Sources
// without native search do not participate.
func (s *AggregatorService) Search(ctx context.Context, query string, limit int) []aggregation.ProductRecord {
	if s.searcher == nil {
		s.logger.Warn("search requested but no searchable source registered")
		return []aggregation.ProductRecord{}
	}
	records, err := s.searcher.SearchProducts(ctx, query, limit)
	if err != nil {
		s.logger.Error("search failed",
			zap.String("source", s.searcher.Source().String()), zap.Error(err))
		return []aggregation.ProductRecord{}
	}
	return records
}

// fetchSoft applies the soft-failure policy: a transport or parse failure
// in one adapter is logged and yields an empty list, never an error.
func (s *AggregatorService) fetchSoft(ctx context.Context, adapter aggregation.CatalogSource, categoryFilter string, limit int) []aggregation.ProductRecord {
	records, err := adapter.FetchProducts(ctx, categoryFilter, limit)
	if err != nil {
		s.logger.Error("product fetch failed",
			zap.String("source", adapter.Source().String()),
			zap.String("category", categoryFilter),
			zap.Error(err))
		return []aggregation.ProductRecord{}
	}
	return records
}
