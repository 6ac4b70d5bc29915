package usecases

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, query GetUnreadCountQuery) (int64, error)
}

type AcknowledgeNotificationExecutor interface {
	Execute(ctx context.Context, cmd AcknowledgeNotificationCommand) (*AcknowledgeNotificationResult, error)
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllReadCommand) error
}
