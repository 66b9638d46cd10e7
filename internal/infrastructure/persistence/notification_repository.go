package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// CreateBatch persists a set of notifications in one insert
func (r *GormNotificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	rows := make([]models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		var row models.NotificationModel
		row.FromDomain(n)
		rows = append(rows, row)
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// FindByRecipient lists a recipient's notifications, newest first
func (r *GormNotificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	var rows []models.NotificationModel
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	notifications := make([]notification.Notification, 0, len(rows))
	for i := range rows {
		notifications = append(notifications, *rows[i].ToDomain())
	}
	return notifications, nil
}

// MarkRead flags one notification as read
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormNotificationRepository implements the port
var _ notification.Repository = (*GormNotificationRepository)(nil)

// GormAdminDirectory implements notification.AdminDirectory using GORM
type GormAdminDirectory struct {
	db *gorm.DB
}

// NewGormAdminDirectory creates a new GormAdminDirectory
func NewGormAdminDirectory(db *gorm.DB) *GormAdminDirectory {
	return &GormAdminDirectory{db: db}
}

// FindAdmins lists every administrator account
func (r *GormAdminDirectory) FindAdmins(ctx context.Context) ([]notification.AdminUser, error) {
	var rows []models.AdminUserModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	admins := make([]notification.AdminUser, 0, len(rows))
	for i := range rows {
		admins = append(admins, rows[i].ToDomain())
	}
	return admins, nil
}

// Ensure GormAdminDirectory implements the port
var _ notification.AdminDirectory = (*GormAdminDirectory)(nil)
