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

type AttachmentInput struct {
	Name string
	Size int64
	MIME string
	URL  string
}

// CreateTicketCommand opens a ticket. AssigneeID is optional; when set,
// the ticket is assigned on creation and the same side effects fire as
// for a standalone assignment.
type CreateTicketCommand struct {
	OrganizationID uint
	OpenedBy       string
	CreatedBy      uint
	ClientFileNo   string
	MobileNo       string
	ClientName     string
	IssueType      string
	Description    string
	AssigneeID     *uint
	Attachments    []AttachmentInput
}

type CreateTicketResult struct {
	UUID      string
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"organization_id", cmd.OrganizationID,
		"issue_type", cmd.IssueType,
		"opened_by", cmd.OpenedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	issueType := vo.IssueType(cmd.IssueType)

	newTicket, err := ticket.NewTicket(
		cmd.OrganizationID,
		cmd.OpenedBy,
		sanitize.Text(cmd.ClientFileNo),
		sanitize.Text(cmd.MobileNo),
		sanitize.Text(cmd.ClientName),
		issueType,
		sanitize.Text(cmd.Description),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	for _, in := range cmd.Attachments {
		att, err := ticket.NewAttachment(in.Name, in.Size, in.MIME, in.URL)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		newTicket.AddAttachment(att)
	}

	if cmd.AssigneeID != nil {
		if err := uc.applyInitialAssignment(ctx, newTicket, *cmd.AssigneeID, cmd.CreatedBy); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// The assignment event was recorded before the insert handed out the
	// id, so rebuild it against the stored row.
	newTicket.ClearEvents()

	toPublish := []events.DomainEvent{
		ticket.NewTicketCreatedEvent(
			newTicket.ID(),
			newTicket.UUID(),
			newTicket.Number(),
			newTicket.OrganizationID(),
			newTicket.IssueType().String(),
			newTicket.OpenedBy(),
		),
	}
	if assigneeID := newTicket.AssigneeID(); assigneeID != nil {
		toPublish = append(toPublish, ticket.NewTicketAssignedEvent(
			newTicket.ID(),
			newTicket.UUID(),
			newTicket.OrganizationID(),
			*assigneeID,
			cmd.CreatedBy,
		))
	}
	if err := uc.eventDispatcher.PublishAll(toPublish); err != nil {
		uc.logger.Warnw("failed to dispatch ticket events", "error", err)
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"number", newTicket.Number())

	return &CreateTicketResult{
		UUID:      newTicket.UUID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) applyInitialAssignment(ctx context.Context, t *ticket.Ticket, assigneeID, createdBy uint) error {
	if assigneeID == 0 {
		return errors.NewValidationError("assignee ID cannot be zero")
	}

	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return errors.NewNotFoundError("assignee not found")
	}
	if !assignee.IsActive() {
		return errors.NewValidationError("assignee is not active")
	}
	if err := t.AssignTo(assigneeID, createdBy); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OrganizationID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if len(cmd.OpenedBy) == 0 {
		return errors.NewValidationError("opener identity is required")
	}
	if len(cmd.ClientFileNo) == 0 {
		return errors.NewValidationError("client file number is required")
	}
	if len(cmd.MobileNo) == 0 {
		return errors.NewValidationError("mobile number is required")
	}
	if len(cmd.ClientName) == 0 {
		return errors.NewValidationError("name of client is required")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	issueType := vo.IssueType(cmd.IssueType)
	if !issueType.IsValid() {
		return errors.NewValidationError("invalid issue type")
	}

	for _, in := range cmd.Attachments {
		if err := ticket.ValidateAttachmentMeta(in.Name, in.Size, in.MIME); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}
