package mappers

import (
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		UUID:         u.UUID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Active:       u.IsActive(),
		Version:      u.Version(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.UUID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.Active,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		model.Version,
	)
}
