package interfaces

import (
	"context"
	"hotprospects/internal/models"
)

// NotificationCenterInterface is the host side of local notifications.
type NotificationCenterInterface interface {
	AuthorizationStatus(ctx context.Context) (models.AuthorizationStatus, error)
	RequestAuthorization(ctx context.Context, opts models.AuthorizationOption) (bool, error)
	Schedule(ctx context.Context, n models.Notification) error
	Pending() []models.PendingNotification
}

type ReminderSchedulerInterface interface {
	Remind(ctx context.Context, p models.Prospect) (models.Notification, error)
}
