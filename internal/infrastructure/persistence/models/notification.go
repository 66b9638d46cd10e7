package models

import (
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/notification"
)

// NotificationModel is the persistence model for administrator notifications.
type NotificationModel struct {
	BaseModel
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Message     string    `gorm:"type:text;not null"`
	Read        bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseEntity:  m.BaseModel.ToDomain(),
		RecipientID: m.RecipientID,
		Title:       m.Title,
		Message:     m.Message,
		Read:        m.Read,
	}
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.RecipientID = n.RecipientID
	m.Title = n.Title
	m.Message = n.Message
	m.Read = n.Read
}

// AdminUserModel is the persistence model for administrator accounts.
type AdminUserModel struct {
	BaseModel
	Email string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name  string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToDomain converts the persistence model to a domain AdminUser entity.
func (m *AdminUserModel) ToDomain() notification.AdminUser {
	return notification.AdminUser{
		BaseEntity: m.BaseModel.ToDomain(),
		Email:      m.Email,
		Name:       m.Name,
	}
}
