package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	OrganizationID uint
}

type ListUserItemDTO struct {
	ID    uint   `json:"id"`
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsersUseCase backs the assignee dropdown; only active members of
// the current organization are offered.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]ListUserItemDTO, error) {
	if query.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}

	users, err := uc.userRepo.ListByOrganization(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err, "organization_id", query.OrganizationID)
		return nil, errors.NewInternalError("failed to list users")
	}

	dtos := make([]ListUserItemDTO, 0, len(users))
	for _, u := range users {
		if !u.IsActive() {
			continue
		}
		dtos = append(dtos, ListUserItemDTO{ID: u.ID(), UUID: u.UUID(), Name: u.Name(), Email: u.Email()})
	}
	return dtos, nil
}
