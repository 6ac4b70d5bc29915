package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/sanitize"
)

// UpdateTicketCommand is a partial edit. Nil pointers leave fields alone.
// AssigneeID pointing at zero clears the assignee.
type UpdateTicketCommand struct {
	UUID           string
	OrganizationID uint
	UpdatedBy      uint
	ClientFileNo   *string
	MobileNo       *string
	ClientName     *string
	IssueType      *string
	Description    *string
	Resolution     *string
	AssigneeID     *uint
	Status         *string
}

type UpdateTicketResult struct {
	UUID      string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case",
		"uuid", cmd.UUID,
		"organization_id", cmd.OrganizationID,
		"updated_by", cmd.UpdatedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByUUID(ctx, cmd.UUID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.OrganizationID() != cmd.OrganizationID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var issueType *vo.IssueType
	if cmd.IssueType != nil {
		it, err := vo.NewIssueType(*cmd.IssueType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		issueType = &it
	}

	err = t.UpdateDetails(
		sanitize.TextPtr(cmd.ClientFileNo),
		sanitize.TextPtr(cmd.MobileNo),
		sanitize.TextPtr(cmd.ClientName),
		issueType,
		sanitize.TextPtr(cmd.Description),
		sanitize.TextPtr(cmd.Resolution),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssigneeID != nil {
		if err := uc.applyAssignment(ctx, t, *cmd.AssigneeID, cmd.UpdatedBy); err != nil {
			return nil, err
		}
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status, cmd.UpdatedBy); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, err
	}

	if err := uc.eventDispatcher.PublishAll(t.GetEvents()); err != nil {
		uc.logger.Warnw("failed to dispatch ticket events", "error", err)
	}
	t.ClearEvents()

	return &UpdateTicketResult{
		UUID:      t.UUID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) applyAssignment(ctx context.Context, t *ticket.Ticket, assigneeID, updatedBy uint) error {
	if assigneeID == 0 {
		t.Unassign()
		return nil
	}

	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return errors.NewNotFoundError("assignee not found")
	}
	if !assignee.IsActive() {
		return errors.NewValidationError("assignee is not active")
	}
	if err := t.AssignTo(assigneeID, updatedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if len(cmd.UUID) == 0 {
		return errors.NewValidationError("ticket UUID is required")
	}
	if cmd.OrganizationID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if cmd.UpdatedBy == 0 {
		return errors.NewValidationError("updated by ID is required")
	}
	if cmd.Description != nil && len(*cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	return nil
}
