package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes notification triggers. Only assignment exists today;
// the column is typed so new triggers don't need a schema change.
type Kind string

const (
	KindTicketAssigned Kind = "ticket_assigned"
)

func (k Kind) IsValid() bool {
	return k == KindTicketAssigned
}

// Notification is an in-app message for one recipient about one ticket.
type Notification struct {
	id             uint
	uuid           string
	organizationID uint
	recipientID    uint
	ticketID       uint
	kind           Kind
	title          string
	message        string
	read           bool
	readAt         *time.Time
	createdAt      time.Time
}

func NewNotification(organizationID, recipientID, ticketID uint, kind Kind, title, message string) (*Notification, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		uuid:           uuid.NewString(),
		organizationID: organizationID,
		recipientID:    recipientID,
		ticketID:       ticketID,
		kind:           kind,
		title:          title,
		message:        message,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructNotification(id uint, notificationUUID string, organizationID, recipientID, ticketID uint, kind Kind, title, message string, read bool, readAt *time.Time, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}

	return &Notification{
		id:             id,
		uuid:           notificationUUID,
		organizationID: organizationID,
		recipientID:    recipientID,
		ticketID:       ticketID,
		kind:           kind,
		title:          title,
		message:        message,
		read:           read,
		readAt:         readAt,
		createdAt:      createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UUID() string         { return n.uuid }
func (n *Notification) OrganizationID() uint { return n.organizationID }
func (n *Notification) RecipientID() uint    { return n.recipientID }
func (n *Notification) TicketID() uint       { return n.ticketID }
func (n *Notification) GetKind() Kind        { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead is idempotent; readAt keeps its first value.
func (n *Notification) MarkRead() {
	if n.read {
		return
	}
	now := time.Now()
	n.read = true
	n.readAt = &now
}
