package aggregation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
)

func newTestAggregator(fake, dummy, platzi aggregation.CatalogSource, opts ...AggregatorOption) *AggregatorService {
	return NewAggregatorService([]aggregation.CatalogSource{fake, dummy, platzi}, zap.NewNop(), opts...)
}

func threeStubAdapters() (*stubAdapter, *stubSearchAdapter, *stubAdapter) {
	fake := &stubAdapter{
		source:     aggregation.SourceFakeStore,
		records:    externalRecords(aggregation.SourceFakeStore, 5),
		categories: []string{"electronics", "men's clothing"},
	}
	dummy := &stubSearchAdapter{
		stubAdapter: stubAdapter{
			source:     aggregation.SourceDummyJSON,
			records:    externalRecords(aggregation.SourceDummyJSON, 5),
			categories: []string{"electronics", "smartphones"},
		},
		searchResults: externalRecords(aggregation.SourceDummyJSON, 2),
	}
	platzi := &stubAdapter{
		source:     aggregation.SourcePlatzi,
		records:    externalRecords(aggregation.SourcePlatzi, 5),
		categories: []string{"Clothes"},
	}
	return fake, dummy, platzi
}

func TestAggregatorService_FetchFromSource(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	records := svc.FetchFromSource(context.Background(), aggregation.SourceFakeStore, "", 3)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, aggregation.SourceFakeStore, r.Source)
	}
}

func TestAggregatorService_FetchFromSource_UnknownIsNoOp(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	records := svc.FetchFromSource(context.Background(), aggregation.Source("ebay"), "", 3)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestAggregatorService_FetchFromAll_SplitsBudgetEvenly(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	records := svc.FetchFromAll(context.Background(), "", 10)
	// floor(10/3) = 3 per source
	require.Len(t, records, 9)

	// Fixed source order regardless of goroutine completion order
	assert.Equal(t, aggregation.SourceFakeStore, records[0].Source)
	assert.Equal(t, aggregation.SourceDummyJSON, records[3].Source)
	assert.Equal(t, aggregation.SourcePlatzi, records[6].Source)
}

func TestAggregatorService_FetchFromAll_BudgetBelowSourceCount(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	assert.Empty(t, svc.FetchFromAll(context.Background(), "", 2))
}

func TestAggregatorService_FetchFromAll_FailedSourceContributesNothing(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	dummy.err = errStubUpstream
	svc := newTestAggregator(fake, dummy, platzi)

	records := svc.FetchFromAll(context.Background(), "", 9)
	require.Len(t, records, 6)
	assert.Equal(t, aggregation.SourceFakeStore, records[0].Source)
	assert.Equal(t, aggregation.SourcePlatzi, records[3].Source)
}

func TestAggregatorService_FetchCategories_SingleSource(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	categories := svc.FetchCategories(context.Background(), "fakestore")
	assert.Equal(t, []string{"electronics", "men's clothing"}, categories)
}

func TestAggregatorService_FetchCategories_AllDeduplicates(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	categories := svc.FetchCategories(context.Background(), aggregation.SourceAll)
	// "electronics" appears in two sources but once in the merge;
	// dedup is case-sensitive so "Clothes" survives as-is
	assert.Equal(t, []string{"electronics", "men's clothing", "smartphones", "Clothes"}, categories)
}

func TestAggregatorService_FetchCategories_UsesCache(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	cache := newStubCache()
	svc := newTestAggregator(fake, dummy, platzi, WithCategoryCache(cache))

	first := svc.FetchCategories(context.Background(), aggregation.SourceAll)
	require.NotEmpty(t, first)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache even if upstreams now fail
	fake.err = errStubUpstream
	dummy.err = errStubUpstream
	platzi.err = errStubUpstream
	second := svc.FetchCategories(context.Background(), aggregation.SourceAll)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestAggregatorService_Search_DelegatesToNativeSource(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	svc := newTestAggregator(fake, dummy, platzi)

	records := svc.Search(context.Background(), "phone", 10)
	require.Len(t, records, 2)
	assert.Equal(t, "phone", dummy.lastQuery)
	for _, r := range records {
		assert.Equal(t, aggregation.SourceDummyJSON, r.Source)
	}
}

func TestAggregatorService_Search_FailsSoft(t *testing.T) {
	fake, dummy, platzi := threeStubAdapters()
	dummy.err = errStubUpstream
	svc := newTestAggregator(fake, dummy, platzi)

	assert.Empty(t, svc.Search(context.Background(), "phone", 10))
}

func TestAggregatorService_Search_NoSearchableSource(t *testing.T) {
	fake := &stubAdapter{source: aggregation.SourceFakeStore}
	platzi := &stubAdapter{source: aggregation.SourcePlatzi}
	svc := NewAggregatorService([]aggregation.CatalogSource{fake, platzi}, zap.NewNop())

	assert.Empty(t, svc.Search(context.Background(), "phone", 10))
}
