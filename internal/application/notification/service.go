package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service delivers and lists administrator notifications. It satisfies the
// aggregation.AdminNotifier port used by the sync engine.
type Service struct {
	repo   notification.Repository
	admins notification.AdminDirectory
	logger *zap.Logger
}

// NewService creates a notification service
func NewService(repo notification.Repository, admins notification.AdminDirectory, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		admins: admins,
		logger: logger.Named("notification"),
	}
}

// NotifyAdmins persists one notification per administrator account
func (s *Service) NotifyAdmins(ctx context.Context, title, message string) error {
	admins, err := s.admins.FindAdmins(ctx)
	if err != nil {
		return fmt.Errorf("notification: resolving admins: %w", err)
	}
	if len(admins) == 0 {
		s.logger.Warn("no administrator accounts to notify")
		return nil
	}

	notifications := make([]*notification.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, notification.NewNotification(admin.ID, title, message))
	}
	if err := s.repo.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("notification: persisting batch: %w", err)
	}
	s.logger.Info("admins notified",
		zap.Int("recipients", len(admins)), zap.String("title", title))
	return nil
}

// List returns one recipient's notifications, newest first
func (s *Service) List(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	return s.repo.FindByRecipient(ctx, recipientID, filter)
}

// MarkRead flags one notification as read
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}
