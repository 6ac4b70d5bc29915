package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error)
}

type SearchTicketsExecutor interface {
	Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context, query GetDashboardStatsQuery) (*dto.DashboardStatsDTO, error)
}

type UploadAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error)
}
