package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetDashboardStatsQuery struct {
	OrganizationID uint
}

type GetDashboardStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute computes the tile counts in one repository pass so the totals
// always add up within a single response.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, query GetDashboardStatsQuery) (*dto.DashboardStatsDTO, error) {
	if query.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err, "organization_id", query.OrganizationID)
		return nil, errors.NewInternalError("failed to load dashboard stats")
	}

	avgHours, err := uc.ticketRepo.AverageResolutionHours(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to compute average resolution time", "error", err, "organization_id", query.OrganizationID)
		return nil, errors.NewInternalError("failed to load dashboard stats")
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	resolvedToday, err := uc.ticketRepo.CountClosedSince(ctx, query.OrganizationID, midnight)
	if err != nil {
		uc.logger.Errorw("failed to count tickets resolved today", "error", err, "organization_id", query.OrganizationID)
		return nil, errors.NewInternalError("failed to load dashboard stats")
	}

	return &dto.DashboardStatsDTO{
		Total:              counts.Total,
		Open:               counts.Open,
		InProgress:         counts.InProgress,
		Closed:             counts.Closed,
		Assigned:           counts.Assigned,
		ResolvedToday:      resolvedToday,
		AvgResolutionHours: avgHours,
	}, nil
}
