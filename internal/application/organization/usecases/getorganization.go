package usecases

import (
	"context"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetOrganizationQuery struct {
	Slug string
}

// GetOrganizationUseCase serves the public branding lookup used before
// login, so it exposes no membership data.
type GetOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewGetOrganizationUseCase(
	orgRepo organization.Repository,
	logger logger.Interface,
) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, query GetOrganizationQuery) (*OrganizationDTO, error) {
	if len(query.Slug) == 0 {
		return nil, errors.NewValidationError("organization slug is required")
	}

	org, err := uc.orgRepo.GetBySlug(ctx, query.Slug)
	if err != nil {
		return nil, errors.NewNotFoundError("organization not found")
	}

	dto := toOrganizationDTO(org, "")
	return &dto, nil
}
