package aggregation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

var errStubUpstream = errors.New("stub: upstream down")

// stubAdapter is a canned CatalogSource for service tests
type stubAdapter struct {
	source     aggregation.Source
	records    []aggregation.ProductRecord
	categories []string
	err        error
}

func (a *stubAdapter) Source() aggregation.Source { return a.source }

func (a *stubAdapter) FetchProducts(_ context.Context, _ string, limit int) ([]aggregation.ProductRecord, error) {
	if a.err != nil {
		return nil, a.err
	}
	if len(a.records) > limit {
		return a.records[:limit], nil
	}
	return a.records, nil
}

func (a *stubAdapter) FetchCategories(context.Context) ([]string, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.categories, nil
}

// stubSearchAdapter adds native search on top of stubAdapter
type stubSearchAdapter struct {
	stubAdapter
	searchResults []aggregation.ProductRecord
	lastQuery     string
}

func (a *stubSearchAdapter) SearchProducts(_ context.Context, query string, _ int) ([]aggregation.ProductRecord, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.lastQuery = query
	return a.searchResults, nil
}

// stubStore is an in-memory ProductStore with error injection
type stubStore struct {
	mu        sync.Mutex
	products  []aggregation.StoreProduct
	insertErr error
	existsErr error
	findErr   error
}

func (s *stubStore) ExistsByExternalID(_ context.Context, externalID string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ExternalID != "" && p.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) Insert(_ context.Context, product *aggregation.StoreProduct) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ExternalID != "" && p.ExternalID == product.ExternalID {
			return shared.ErrDuplicateExternal
		}
	}
	s.products = append(s.products, *product)
	return nil
}

func (s *stubStore) FindAll(_ context.Context, query aggregation.ProductQuery) ([]aggregation.StoreProduct, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]aggregation.StoreProduct, 0, len(s.products))
	for _, p := range s.products {
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		if query.Source != "" && p.Source != query.Source {
			continue
		}
		matched = append(matched, p)
		if query.Limit > 0 && len(matched) == query.Limit {
			break
		}
	}
	return matched, nil
}

func (s *stubStore) FindByID(_ context.Context, id uuid.UUID) (*aggregation.StoreProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubStore) Save(_ context.Context, product *aggregation.StoreProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return shared.ErrNotFound
}

func (s *stubStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (s *stubStore) DeleteBySource(_ context.Context, source aggregation.Source) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	var removed int64
	for _, p := range s.products {
		if p.Source == source {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	return removed, nil
}

var _ aggregation.ProductStore = (*stubStore)(nil)

// stubNotifier records notification calls
type stubNotifier struct {
	mu       sync.Mutex
	calls    int
	messages []string
	err      error
}

func (n *stubNotifier) NotifyAdmins(_ context.Context, _ string, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.messages = append(n.messages, message)
	return n.err
}

// stubCache is an in-memory CategoryCache
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]string
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]string)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	values, ok := c.entries[key]
	return values, ok
}

func (c *stubCache) Set(_ context.Context, key string, values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = values
	c.sets++
}

// externalRecords builds n valid canonical records for the given source
func externalRecords(source aggregation.Source, n int) []aggregation.ProductRecord {
	records := make([]aggregation.ProductRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, aggregation.ProductRecord{
			Name:       fmt.Sprintf("%s item %d", source, i),
			Price:      decimal.NewFromInt(int64(10 * i)),
			Category:   aggregation.CategoryElectronics,
			Stock:      aggregation.DefaultStock,
			Source:     source,
			ExternalID: aggregation.MakeExternalID(source, fmt.Sprintf("%d", i)),
		})
	}
	return records
}
