package aggregation

import "context"

// AdminNotifier is the notification collaborator port. The sync engine
// calls it fire-and-forget: failures are logged by the caller and never
// affect the reported sync result.
type AdminNotifier interface {
	// NotifyAdmins delivers a message to every administrator account
	NotifyAdmins(ctx context.Context, title, message string) error
}
