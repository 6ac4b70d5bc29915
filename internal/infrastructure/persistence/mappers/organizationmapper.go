package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/infrastructure/persistence/models"
)

type OrganizationMapper interface {
	ToModel(org *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
	MembershipToModel(m *organization.Membership) *models.MembershipModel
	MembershipToDomain(model *models.MembershipModel) (*organization.Membership, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(org *organization.Organization) *models.OrganizationModel {
	theme := org.Theme()
	return &models.OrganizationModel{
		ID:             org.ID(),
		UUID:           org.UUID(),
		Name:           org.Name(),
		Slug:           org.Slug(),
		PrimaryColor:   theme.PrimaryColor,
		SecondaryColor: theme.SecondaryColor,
		AccentColor:    theme.AccentColor,
		LogoURL:        org.LogoURL(),
		Version:        org.Version(),
		CreatedAt:      org.CreatedAt().UnixMilli(),
		UpdatedAt:      org.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	return organization.ReconstructOrganization(
		model.ID,
		model.UUID,
		model.Name,
		model.Slug,
		organization.Theme{
			PrimaryColor:   model.PrimaryColor,
			SecondaryColor: model.SecondaryColor,
			AccentColor:    model.AccentColor,
		},
		model.LogoURL,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		model.Version,
	)
}

func (m *OrganizationMapperImpl) MembershipToModel(membership *organization.Membership) *models.MembershipModel {
	return &models.MembershipModel{
		ID:             membership.ID(),
		UserID:         membership.UserID(),
		OrganizationID: membership.OrganizationID(),
		Role:           membership.Role().String(),
		CreatedAt:      membership.CreatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) MembershipToDomain(model *models.MembershipModel) (*organization.Membership, error) {
	role, err := organization.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role in membership %d: %w", model.ID, err)
	}
	return organization.ReconstructMembership(
		model.ID,
		model.UserID,
		model.OrganizationID,
		role,
		time.UnixMilli(model.CreatedAt),
	)
}
