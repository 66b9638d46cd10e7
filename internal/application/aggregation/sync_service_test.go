package aggregation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

func newTestSync(t *testing.T) (*SyncService, *stubStore, *stubNotifier, *stubSearchAdapter) {
	t.Helper()
	fake, dummy, platzi := threeStubAdapters()
	store := &stubStore{}
	notifier := &stubNotifier{}
	svc := NewSyncService(newTestAggregator(fake, dummy, platzi), store, notifier, zap.NewNop())
	return svc, store, notifier, dummy
}

func TestSyncService_Sync_SingleSource(t *testing.T) {
	svc, store, notifier, _ := newTestSync(t)

	result, err := svc.Sync(context.Background(), "fakestore", "", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Len(t, result.Synced, 3)
	assert.Empty(t, result.Skipped)
	assert.Len(t, store.products, 3)
	assert.Equal(t, 1, notifier.calls)
}

func TestSyncService_Sync_AllSources(t *testing.T) {
	svc, store, _, _ := newTestSync(t)

	result, err := svc.Sync(context.Background(), aggregation.SourceAll, "", 9)
	require.NoError(t, err)
	assert.Len(t, result.Synced, 9)
	assert.Len(t, store.products, 9)
}

func TestSyncService_Sync_SkipsAlreadyPersisted(t *testing.T) {
	svc, store, notifier, _ := newTestSync(t)

	first, err := svc.Sync(context.Background(), "fakestore", "", 3)
	require.NoError(t, err)
	require.Len(t, first.Synced, 3)

	second, err := svc.Sync(context.Background(), "fakestore", "", 3)
	require.NoError(t, err)
	assert.Empty(t, second.Synced)
	assert.Len(t, second.Skipped, 3)
	assert.Len(t, store.products, 3)

	// No new records on the second run, so no second notification
	assert.Equal(t, 1, notifier.calls)
}

func TestSyncService_Sync_DeduplicatesWithinBatch(t *testing.T) {
	fake := &stubAdapter{source: aggregation.SourceFakeStore}
	fake.records = append(externalRecords(aggregation.SourceFakeStore, 2),
		externalRecords(aggregation.SourceFakeStore, 1)...)
	store := &stubStore{}
	svc := NewSyncService(
		NewAggregatorService([]aggregation.CatalogSource{fake}, zap.NewNop()),
		store, &stubNotifier{}, zap.NewNop())

	result, err := svc.Sync(context.Background(), "fakestore", "", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Len(t, result.Synced, 2)
	assert.Equal(t, []string{"fakestore_1"}, result.Skipped)
}

func TestSyncService_Sync_InvalidCandidateSkipped(t *testing.T) {
	records := externalRecords(aggregation.SourceFakeStore, 2)
	records[1].Name = ""
	fake := &stubAdapter{source: aggregation.SourceFakeStore, records: records}
	store := &stubStore{}
	svc := NewSyncService(
		NewAggregatorService([]aggregation.CatalogSource{fake}, zap.NewNop()),
		store, &stubNotifier{}, zap.NewNop())

	result, err := svc.Sync(context.Background(), "fakestore", "", 10)
	require.NoError(t, err)
	assert.Len(t, result.Synced, 1)
	assert.Equal(t, []string{"fakestore_2"}, result.Skipped)
}

func TestSyncService_Sync_InsertConflictSkipped(t *testing.T) {
	svc, store, _, _ := newTestSync(t)
	store.insertErr = shared.ErrDuplicateExternal

	result, err := svc.Sync(context.Background(), "fakestore", "", 3)
	require.NoError(t, err)
	assert.Empty(t, result.Synced)
	assert.Len(t, result.Skipped, 3)
}

func TestSyncService_Sync_UnknownSource(t *testing.T) {
	svc, _, _, _ := newTestSync(t)

	_, err := svc.Sync(context.Background(), "ebay", "", 3)
	assert.ErrorIs(t, err, shared.ErrUnknownSource)

	// manual is a valid source tag but not a syncable one
	_, err = svc.Sync(context.Background(), "manual", "", 3)
	assert.ErrorIs(t, err, shared.ErrUnknownSource)
}

func TestSyncService_Sync_NotifierFailureIgnored(t *testing.T) {
	svc, _, notifier, _ := newTestSync(t)
	notifier.err = errStubUpstream

	result, err := svc.Sync(context.Background(), "fakestore", "", 3)
	require.NoError(t, err)
	assert.Len(t, result.Synced, 3)
	assert.Equal(t, 1, notifier.calls)
}

func TestSyncService_Sync_NoCandidatesNoNotification(t *testing.T) {
	fake := &stubAdapter{source: aggregation.SourceFakeStore, err: errStubUpstream}
	notifier := &stubNotifier{}
	svc := NewSyncService(
		NewAggregatorService([]aggregation.CatalogSource{fake}, zap.NewNop()),
		&stubStore{}, notifier, zap.NewNop())

	result, err := svc.Sync(context.Background(), "fakestore", "", 10)
	require.NoError(t, err)
	assert.Empty(t, result.Synced)
	assert.Zero(t, notifier.calls)
}
