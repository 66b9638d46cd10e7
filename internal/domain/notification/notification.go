package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Notification is a message delivered to one administrator account
type Notification struct {
	shared.BaseEntity
	RecipientID uuid.UUID
	Title       string
	Message     string
	Read        bool
}

// NewNotification creates an unread notification for one recipient
func NewNotification(recipientID uuid.UUID, title, message string) *Notification {
	return &Notification{
		BaseEntity:  shared.NewBaseEntity(),
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
	}
}

// MarkRead flags the notification as read
func (n *Notification) MarkRead() {
	n.Read = true
}

// Repository is the notification persistence port
type Repository interface {
	// CreateBatch persists a set of notifications in one operation
	CreateBatch(ctx context.Context, notifications []*Notification) error

	// FindByRecipient lists a recipient's notifications, newest first
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// MarkRead flags one notification as read
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// AdminUser is a minimal administrator account used as a notification
// recipient. Account lifecycle is managed elsewhere.
type AdminUser struct {
	shared.BaseEntity
	Email string
	Name  string
}

// AdminDirectory resolves the current administrator accounts
type AdminDirectory interface {
	// FindAdmins lists every administrator account
	FindAdmins(ctx context.Context) ([]AdminUser, error)
}
