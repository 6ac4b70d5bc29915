package usecases

import "context"

type ListUserOrganizationsExecutor interface {
	Execute(ctx context.Context, query ListUserOrganizationsQuery) ([]OrganizationDTO, error)
}

type GetOrganizationExecutor interface {
	Execute(ctx context.Context, query GetOrganizationQuery) (*OrganizationDTO, error)
}
