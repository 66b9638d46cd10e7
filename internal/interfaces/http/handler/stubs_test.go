package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

// fakeAdapter is an in-memory CatalogSource for handler tests
type fakeAdapter struct {
	source     aggregation.Source
	records    []aggregation.ProductRecord
	categories []string
	err        error
}

func (a *fakeAdapter) Source() aggregation.Source { return a.source }

func (a *fakeAdapter) FetchProducts(_ context.Context, _ string, limit int) ([]aggregation.ProductRecord, error) {
	if a.err != nil {
		return nil, a.err
	}
	if limit > len(a.records) {
		limit = len(a.records)
	}
	return a.records[:limit], nil
}

func (a *fakeAdapter) FetchCategories(context.Context) ([]string, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.categories, nil
}

// fakeSearchAdapter adds native search on top of fakeAdapter
type fakeSearchAdapter struct {
	fakeAdapter
	searchResults []aggregation.ProductRecord
}

func (a *fakeSearchAdapter) SearchProducts(_ context.Context, _ string, limit int) ([]aggregation.ProductRecord, error) {
	if a.err != nil {
		return nil, a.err
	}
	if limit > len(a.searchResults) {
		limit = len(a.searchResults)
	}
	return a.searchResults[:limit], nil
}

// memStore is an in-memory ProductStore for handler tests
type memStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]aggregation.StoreProduct
}

func newMemStore() *memStore {
	return &memStore{products: make(map[uuid.UUID]aggregation.StoreProduct)}
}

func (s *memStore) ExistsByExternalID(_ context.Context, externalID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if externalID == "" {
		return false, nil
	}
	for _, p := range s.products {
		if p.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Insert(_ context.Context, product *aggregation.StoreProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ExternalID != "" {
		for _, p := range s.products {
			if p.ExternalID == product.ExternalID {
				return shared.ErrDuplicateExternal
			}
		}
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memStore) FindAll(_ context.Context, query aggregation.ProductQuery) ([]aggregation.StoreProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []aggregation.StoreProduct
	for _, p := range s.products {
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		if query.Source != "" && p.Source != query.Source {
			continue
		}
		result = append(result, p)
	}
	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}
	return result, nil
}

func (s *memStore) FindByID(_ context.Context, id uuid.UUID) (*aggregation.StoreProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, shared.ErrNotFound
}

func (s *memStore) Save(_ context.Context, product *aggregation.StoreProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return shared.ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memStore) DeleteBySource(_ context.Context, source aggregation.Source) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, p := range s.products {
		if p.Source == source {
			delete(s.products, id)
			removed++
		}
	}
	return removed, nil
}

var _ aggregation.ProductStore = (*memStore)(nil)

// fakeNotifier records admin notifications
type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *fakeNotifier) NotifyAdmins(context.Context, string, string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = n.calls + 1
	return nil
}

func upstreamRecords(source aggregation.Source, n int) []aggregation.ProductRecord {
	records := make([]aggregation.ProductRecord, n)
	for i := 0; i < n; i++ {
		records[i] = aggregation.ProductRecord{
			Name:       fmt.Sprintf("%s item %d", source, i+1),
			Price:      decimal.NewFromInt(int64(10 + i)),
			Category:   "electronics",
			Rating:     4.2,
			Stock:      12,
			Source:     source,
			ExternalID: aggregation.MakeExternalID(source, fmt.Sprintf("%d", i+1)),
		}
	}
	return records
}

// testFixture bundles the wired services and their backing fakes
type testFixture struct {
	handler  *ExternalProductHandler
	store    *memStore
	notifier *fakeNotifier
}

func newTestFixture() *testFixture {
	logger := zap.NewNop()

	fake := &fakeAdapter{
		source:     aggregation.SourceFakeStore,
		records:    upstreamRecords(aggregation.SourceFakeStore, 5),
		categories: []string{"electronics", "clothing"},
	}
	dummy := &fakeSearchAdapter{
		fakeAdapter: fakeAdapter{
			source:     aggregation.SourceDummyJSON,
			records:    upstreamRecords(aggregation.SourceDummyJSON, 5),
			categories: []string{"electronics", "smartphones"},
		},
		searchResults: upstreamRecords(aggregation.SourceDummyJSON, 2),
	}
	platzi := &fakeAdapter{
		source:     aggregation.SourcePlatzi,
		records:    upstreamRecords(aggregation.SourcePlatzi, 5),
		categories: []string{"Clothes"},
	}

	aggregator := appaggregation.NewAggregatorService(
		[]aggregation.CatalogSource{fake, dummy, platzi}, logger)

	store := newMemStore()
	notifier := &fakeNotifier{}
	syncer := appaggregation.NewSyncService(aggregator, store, notifier, logger)
	combined := appaggregation.NewCombinedService(store, aggregator, 0, logger)
	catalog := appaggregation.NewCatalogService(store, logger)

	return &testFixture{
		handler:  NewExternalProductHandler(aggregator, syncer, combined, catalog),
		store:    store,
		notifier: notifier,
	}
}
