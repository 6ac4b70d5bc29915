package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	UUID           string
	OrganizationID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if len(query.UUID) == 0 {
		return nil, errors.NewValidationError("ticket UUID is required")
	}
	if query.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	t, err := uc.ticketRepo.GetByUUID(ctx, query.UUID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "uuid", query.UUID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// A ticket from another tenant is indistinguishable from a missing one.
	if t.OrganizationID() != query.OrganizationID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assigneeName, closedByName := uc.resolveNames(ctx, t)
	return dto.ToTicketDTO(t, assigneeName, closedByName), nil
}

func (uc *GetTicketUseCase) resolveNames(ctx context.Context, t *ticket.Ticket) (string, string) {
	var ids []uint
	if t.AssigneeID() != nil {
		ids = append(ids, *t.AssigneeID())
	}
	if t.ClosedBy() != nil {
		ids = append(ids, *t.ClosedBy())
	}
	if len(ids) == 0 {
		return "", ""
	}

	users, err := uc.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "error", err)
		return "", ""
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}

	var assigneeName, closedByName string
	if t.AssigneeID() != nil {
		assigneeName = names[*t.AssigneeID()]
	}
	if t.ClosedBy() != nil {
		closedByName = names[*t.ClosedBy()]
	}
	return assigneeName, closedByName
}
