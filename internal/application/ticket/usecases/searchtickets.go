package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SearchTicketsQuery struct {
	OrganizationID uint
	Query          string
	Status         string
	AssigneeID     *uint
	Page           int
	PageSize       int
}

type SearchTicketsResult struct {
	Items    []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type SearchTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error) {
	if query.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.SearchFilter{
		OrganizationID: query.OrganizationID,
		Query:          strings.TrimSpace(query.Query),
		AssigneeID:     query.AssigneeID,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}

	if len(query.Status) > 0 {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "error", err, "organization_id", query.OrganizationID)
		return nil, errors.NewInternalError("failed to search tickets")
	}

	names := uc.assigneeNames(ctx, tickets)

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		var assigneeName string
		if t.AssigneeID() != nil {
			assigneeName = names[*t.AssigneeID()]
		}
		items = append(items, dto.ToTicketListItemDTO(t, assigneeName))
	}

	return &SearchTicketsResult{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func (uc *SearchTicketsUseCase) assigneeNames(ctx context.Context, tickets []*ticket.Ticket) map[uint]string {
	idSet := make(map[uint]struct{})
	for _, t := range tickets {
		if t.AssigneeID() != nil {
			idSet[*t.AssigneeID()] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve assignee names", "error", err)
		return nil
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names
}
