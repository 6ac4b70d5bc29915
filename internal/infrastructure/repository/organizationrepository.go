package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(gdb *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     gdb,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return org.SetID(model.ID)
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OrganizationModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	var rows []models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	orgs := make([]*organization.Organization, 0, len(rows))
	for i := range rows {
		org, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

type MembershipRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewMembershipRepository(gdb *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db:     gdb,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *MembershipRepository) Save(ctx context.Context, m *organization.Membership) error {
	model := r.mapper.MembershipToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save membership: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MembershipRepository) Get(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
	var model models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ? AND organization_id = ?", userID, organizationID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("membership not found")
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	return r.mapper.MembershipToDomain(&model)
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID uint) ([]*organization.Membership, error) {
	var rows []models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *MembershipRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*organization.Membership, error) {
	var rows []models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("organization_id = ?", organizationID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *MembershipRepository) Delete(ctx context.Context, userID, organizationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("user_id = ? AND organization_id = ?", userID, organizationID).
		Delete(&models.MembershipModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("membership not found")
	}
	return nil
}

func (r *MembershipRepository) toDomainList(rows []models.MembershipModel) ([]*organization.Membership, error) {
	memberships := make([]*organization.Membership, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MembershipToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, nil
}
