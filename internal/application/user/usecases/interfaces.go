package usecases

import "context"

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type SelectOrganizationExecutor interface {
	Execute(ctx context.Context, cmd SelectOrganizationCommand) (*SelectOrganizationResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]ListUserItemDTO, error)
}
