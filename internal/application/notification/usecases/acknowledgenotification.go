package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AcknowledgeNotificationCommand struct {
	UUID           string
	OrganizationID uint
	RecipientID    uint
}

// AcknowledgeNotificationResult carries where the client should navigate
// and the ticket state after acknowledgment.
type AcknowledgeNotificationResult struct {
	TicketUUID   string
	TicketStatus string
}

// AcknowledgeNotificationUseCase marks the notification read and moves a
// still-open ticket to in_progress, so clicking the bell doubles as
// picking the ticket up.
type AcknowledgeNotificationUseCase struct {
	notificationRepo notification.Repository
	ticketRepo       ticket.Repository
	eventDispatcher  events.EventPublisher
	logger           logger.Interface
}

func NewAcknowledgeNotificationUseCase(
	notificationRepo notification.Repository,
	ticketRepo ticket.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *AcknowledgeNotificationUseCase {
	return &AcknowledgeNotificationUseCase{
		notificationRepo: notificationRepo,
		ticketRepo:       ticketRepo,
		eventDispatcher:  eventDispatcher,
		logger:           logger,
	}
}

func (uc *AcknowledgeNotificationUseCase) Execute(ctx context.Context, cmd AcknowledgeNotificationCommand) (*AcknowledgeNotificationResult, error) {
	if len(cmd.UUID) == 0 {
		return nil, errors.NewValidationError("notification UUID is required")
	}
	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if cmd.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}

	record, err := uc.notificationRepo.GetByUUID(ctx, cmd.UUID)
	if err != nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	if record.OrganizationID() != cmd.OrganizationID || record.RecipientID() != cmd.RecipientID {
		return nil, errors.NewNotFoundError("notification not found")
	}

	if !record.IsRead() {
		record.MarkRead()
		if err := uc.notificationRepo.Update(ctx, record); err != nil {
			uc.logger.Errorw("failed to mark notification read", "error", err, "uuid", cmd.UUID)
			return nil, errors.NewInternalError("failed to acknowledge notification")
		}
	}

	t, err := uc.ticketRepo.GetByID(ctx, record.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket for acknowledged notification",
			"error", err, "ticket_id", record.TicketID())
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if t.Status().IsOpen() {
		if err := t.ChangeStatus(vo.StatusInProgress, cmd.RecipientID); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to move ticket to in_progress", "error", err, "ticket_id", t.ID())
			return nil, errors.NewInternalError("failed to update ticket")
		}
		if err := uc.eventDispatcher.PublishAll(t.GetEvents()); err != nil {
			uc.logger.Warnw("failed to dispatch events", "error", err)
		}
		t.ClearEvents()
	}

	return &AcknowledgeNotificationResult{
		TicketUUID:   t.UUID(),
		TicketStatus: t.Status().String(),
	}, nil
}
