package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	UUID           string
	OrganizationID uint
	AssigneeID     uint
	AssignedBy     uint
}

type AssignTicketResult struct {
	UUID       string
	AssigneeID uint
	Status     string
	UpdatedAt  time.Time
}

type AssignTicketUseCase struct {
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"uuid", cmd.UUID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign ticket command", "error", err)
		return nil, err
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("failed to find assignee", "error", err, "assignee_id", cmd.AssigneeID)
		return nil, errors.NewNotFoundError("assignee not found")
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee is not active and cannot be assigned tickets")
	}

	t, err := uc.ticketRepo.GetByUUID(ctx, cmd.UUID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "uuid", cmd.UUID)
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.OrganizationID() != cmd.OrganizationID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.AssignTo(cmd.AssigneeID, cmd.AssignedBy); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if err := uc.eventDispatcher.PublishAll(t.GetEvents()); err != nil {
		uc.logger.Warnw("failed to dispatch events", "error", err)
	}
	t.ClearEvents()

	uc.logger.Infow("ticket assigned successfully",
		"uuid", t.UUID(),
		"assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		UUID:       t.UUID(),
		AssigneeID: cmd.AssigneeID,
		Status:     t.Status().String(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if len(cmd.UUID) == 0 {
		return errors.NewValidationError("ticket UUID is required")
	}
	if cmd.OrganizationID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if cmd.AssignedBy == 0 {
		return errors.NewValidationError("assigned by ID is required")
	}
	return nil
}
