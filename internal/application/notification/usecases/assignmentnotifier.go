package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// Mailer sends the assignment email. Implementations may be absent in
// which case only the in-app notification is produced.
type Mailer interface {
	SendTicketAssigned(ctx context.Context, to, assigneeName, ticketNumber, clientName string) error
}

// Pusher broadcasts a freshly created notification so connected clients
// update their bell without polling.
type Pusher interface {
	PublishNotification(ctx context.Context, n *notification.Notification) error
}

// AssignmentNotifier turns ticket assignment events into notification
// records plus best-effort email and push delivery.
type AssignmentNotifier struct {
	notificationRepo notification.Repository
	ticketRepo       ticket.Repository
	userRepo         user.Repository
	mailer           Mailer
	pusher           Pusher
	logger           logger.Interface
}

func NewAssignmentNotifier(
	notificationRepo notification.Repository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	mailer Mailer,
	pusher Pusher,
	logger logger.Interface,
) *AssignmentNotifier {
	return &AssignmentNotifier{
		notificationRepo: notificationRepo,
		ticketRepo:       ticketRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		pusher:           pusher,
		logger:           logger,
	}
}

func (n *AssignmentNotifier) CanHandle(eventType string) bool {
	return eventType == ticket.TicketAssignedEventType
}

func (n *AssignmentNotifier) Handle(event events.DomainEvent) error {
	assigned, ok := event.(*ticket.TicketAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	ctx := context.Background()

	t, err := n.ticketRepo.GetByID(ctx, assigned.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket %d: %w", assigned.TicketID, err)
	}

	title := fmt.Sprintf("Ticket %s assigned to you", t.Number())
	message := fmt.Sprintf("%s / %s (%s)", t.ClientName(), t.ClientFileNo(), t.IssueType())

	record, err := notification.NewNotification(
		assigned.OrganizationID,
		assigned.AssigneeID,
		assigned.TicketID,
		notification.KindTicketAssigned,
		title,
		message,
	)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := n.notificationRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	n.logger.Infow("assignment notification created",
		"notification_uuid", record.UUID(),
		"ticket_id", assigned.TicketID,
		"recipient_id", assigned.AssigneeID)

	// Delivery beyond the stored record is best effort; a dead SMTP server
	// or Redis must not undo the assignment.
	n.deliver(ctx, record, t)
	return nil
}

func (n *AssignmentNotifier) deliver(ctx context.Context, record *notification.Notification, t *ticket.Ticket) {
	if n.pusher != nil {
		if err := n.pusher.PublishNotification(ctx, record); err != nil {
			n.logger.Warnw("failed to push notification", "error", err, "notification_uuid", record.UUID())
		}
	}

	if n.mailer == nil {
		return
	}
	assignee, err := n.userRepo.GetByID(ctx, record.RecipientID())
	if err != nil {
		n.logger.Warnw("failed to load assignee for email", "error", err, "recipient_id", record.RecipientID())
		return
	}
	if err := n.mailer.SendTicketAssigned(ctx, assignee.Email(), assignee.Name(), t.Number(), t.ClientName()); err != nil {
		n.logger.Warnw("failed to send assignment email", "error", err, "recipient_id", record.RecipientID())
	}
}
