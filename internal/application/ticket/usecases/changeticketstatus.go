package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/sanitize"
)

type ChangeTicketStatusCommand struct {
	UUID           string
	OrganizationID uint
	Status         string
	ChangedBy      uint
	// Resolution is only honored when the new status is closed.
	Resolution string
}

type ChangeTicketStatusResult struct {
	UUID      string
	Status    string
	ClosedOn  *time.Time
	UpdatedAt time.Time
}

type ChangeTicketStatusUseCase struct {
	ticketRepo      ticket.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo:      ticketRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error) {
	uc.logger.Infow("executing change ticket status use case",
		"uuid", cmd.UUID,
		"status", cmd.Status,
		"changed_by", cmd.ChangedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByUUID(ctx, cmd.UUID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.OrganizationID() != cmd.OrganizationID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if status.IsClosed() {
		err = t.Close(sanitize.Text(cmd.Resolution), cmd.ChangedBy)
	} else {
		err = t.ChangeStatus(status, cmd.ChangedBy)
	}
	if err != nil {
		// Invalid transitions are conflicts with the current state, not
		// malformed input.
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if err := uc.eventDispatcher.PublishAll(t.GetEvents()); err != nil {
		uc.logger.Warnw("failed to dispatch events", "error", err)
	}
	t.ClearEvents()

	return &ChangeTicketStatusResult{
		UUID:      t.UUID(),
		Status:    t.Status().String(),
		ClosedOn:  t.ClosedOn(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *ChangeTicketStatusUseCase) validateCommand(cmd ChangeTicketStatusCommand) error {
	if len(cmd.UUID) == 0 {
		return errors.NewValidationError("ticket UUID is required")
	}
	if cmd.OrganizationID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if len(cmd.Status) == 0 {
		return errors.NewValidationError("status is required")
	}
	if cmd.ChangedBy == 0 {
		return errors.NewValidationError("changed by ID is required")
	}
	return nil
}
