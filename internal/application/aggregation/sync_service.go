package aggregation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
)

// SyncResult reports the outcome of one import run
type SyncResult struct {
	// Source is the source selector the run was asked for
	Source string
	// Attempted is how many candidate records the upstreams returned
	Attempted int
	// Synced holds the records persisted by this run, in fetch order
	Synced []aggregation.StoreProduct
	// Skipped holds the external IDs left out as duplicates or failures
	Skipped []string
}

// SyncService imports external catalog records into the local store.
// Imports are idempotent on externalId: a record already present locally,
// or repeated within one batch, is skipped rather than duplicated.
type SyncService struct {
	aggregator *AggregatorService
	store      aggregation.ProductStore
	notifier   aggregation.AdminNotifier
	logger     *zap.Logger
}

// NewSyncService creates a sync service
func NewSyncService(aggregator *AggregatorService, store aggregation.ProductStore, notifier aggregation.AdminNotifier, logger *zap.Logger) *SyncService {
	return &SyncService{
		aggregator: aggregator,
		store:      store,
		notifier:   notifier,
		logger:     logger.Named("sync"),
	}
}

// Sync fetches from the selected source (or every source for
// aggregation.SourceAll), then persists each record not already present.
// Per-record failures mark the record skipped and never abort the batch.
// A run that persisted at least one record notifies the admins; a
// notification failure is logged and does not affect the result.
func (s *SyncService) Sync(ctx context.Context, source string, categoryFilter string, limit int) (*SyncResult, error) {
	candidates, err := s.fetchCandidates(ctx, source, categoryFilter, limit)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		Source:  source,
		Synced:  []aggregation.StoreProduct{},
		Skipped: []string{},
	}
	result.Attempted = len(candidates)

	seen := make(map[string]struct{}, len(candidates))
	for _, record := range candidates {
		if record.ExternalID == "" {
			s.logger.Warn("candidate without external id skipped", zap.String("name", record.Name))
			result.Skipped = append(result.Skipped, "")
			continue
		}
		if _, dup := seen[record.ExternalID]; dup {
			result.Skipped = append(result.Skipped, record.ExternalID)
			continue
		}
		seen[record.ExternalID] = struct{}{}

		exists, err := s.store.ExistsByExternalID(ctx, record.ExternalID)
		if err != nil {
			s.logger.Error("existence check failed",
				zap.String("external_id", record.ExternalID), zap.Error(err))
			result.Skipped = append(result.Skipped, record.ExternalID)
			continue
		}
		if exists {
			result.Skipped = append(result.Skipped, record.ExternalID)
			continue
		}

		product, err := aggregation.NewStoreProduct(record)
		if err != nil {
			s.logger.Warn("candidate failed validation",
				zap.String("external_id", record.ExternalID), zap.Error(err))
			result.Skipped = append(result.Skipped, record.ExternalID)
			continue
		}
		if err := s.store.Insert(ctx, product); err != nil {
			if errors.Is(err, shared.ErrDuplicateExternal) {
				// Lost the race against a concurrent sync; same as exists.
				result.Skipped = append(result.Skipped, record.ExternalID)
				continue
			}
			s.logger.Error("insert failed",
				zap.String("external_id", record.ExternalID), zap.Error(err))
			result.Skipped = append(result.Skipped, record.ExternalID)
			continue
		}
		result.Synced = append(result.Synced, *product)
	}

	s.logger.Info("sync completed",
		zap.String("source", source),
		zap.Int("attempted", result.Attempted),
		zap.Int("synced", len(result.Synced)),
		zap.Int("skipped", len(result.Skipped)))

	if len(result.Synced) > 0 {
		s.notifyAdmins(ctx, source, len(result.Synced))
	}
	return result, nil
}

// fetchCandidates resolves the source selector to upstream records.
// "all" fans out; a named source must be a known external source.
func (s *SyncService) fetchCandidates(ctx context.Context, source string, categoryFilter string, limit int) ([]aggregation.ProductRecord, error) {
	if source == aggregation.SourceAll {
		return s.aggregator.FetchFromAll(ctx, categoryFilter, limit), nil
	}
	parsed, ok := aggregation.ParseSource(source)
	if !ok || !parsed.IsExternal() {
		return nil, shared.ErrUnknownSource
	}
	return s.aggregator.FetchFromSource(ctx, parsed, categoryFilter, limit), nil
}

// notifyAdmins is fire-and-forget: delivery failure is logged, never returned
func (s *SyncService) notifyAdmins(ctx context.Context, source string, count int) {
	if s.notifier == nil {
		return
	}
	title := "External products synced"
	message := fmt.Sprintf("%d product(s) imported from %s", count, source)
	if err := s.notifier.NotifyAdmins(ctx, title, message); err != nil {
		s.logger.Error("admin notification failed", zap.Error(err))
	}
}
