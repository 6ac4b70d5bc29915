package usecases

import (
	"context"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type OrganizationDTO struct {
	UUID           string `json:"uuid"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	LogoURL        string `json:"logo_url,omitempty"`
	Role           string `json:"role,omitempty"`
}

func toOrganizationDTO(org *organization.Organization, role string) OrganizationDTO {
	theme := org.Theme()
	return OrganizationDTO{
		UUID:           org.UUID(),
		Name:           org.Name(),
		Slug:           org.Slug(),
		PrimaryColor:   theme.PrimaryColor,
		SecondaryColor: theme.SecondaryColor,
		AccentColor:    theme.AccentColor,
		LogoURL:        org.LogoURL(),
		Role:           role,
	}
}

type ListUserOrganizationsQuery struct {
	UserID uint
}

// ListUserOrganizationsUseCase backs the organization picker shown right
// after login.
type ListUserOrganizationsUseCase struct {
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	logger         logger.Interface
}

func NewListUserOrganizationsUseCase(
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	logger logger.Interface,
) *ListUserOrganizationsUseCase {
	return &ListUserOrganizationsUseCase{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *ListUserOrganizationsUseCase) Execute(ctx context.Context, query ListUserOrganizationsQuery) ([]OrganizationDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	memberships, err := uc.membershipRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list memberships", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to list organizations")
	}

	dtos := make([]OrganizationDTO, 0, len(memberships))
	for _, m := range memberships {
		org, err := uc.orgRepo.GetByID(ctx, m.OrganizationID())
		if err != nil {
			uc.logger.Warnw("membership points at missing organization",
				"organization_id", m.OrganizationID(), "user_id", query.UserID)
			continue
		}
		dtos = append(dtos, toOrganizationDTO(org, m.Role().String()))
	}
	return dtos, nil
}
