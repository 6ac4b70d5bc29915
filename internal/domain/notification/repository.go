package notification

import "context"

// ListFilter narrows a notification listing for one recipient.
type ListFilter struct {
	OrganizationID uint
	RecipientID    uint
	UnreadOnly     bool
	Page           int
	PageSize       int
}

// Repository is the persistence port for notifications.
type Repository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByUUID(ctx context.Context, uuid string) (*Notification, error)
	// List returns the filtered page newest-first plus the total match
	// count before paging.
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, organizationID, recipientID uint) (int64, error)
	MarkAllRead(ctx context.Context, organizationID, recipientID uint) error
}
