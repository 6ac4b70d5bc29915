package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SelectOrganizationCommand struct {
	UserID           uint
	OrganizationSlug string
}

// SelectOrganizationResult carries the org-scoped token every later
// request uses; the role claim inside it drives authorization.
type SelectOrganizationResult struct {
	Token     string
	ExpiresAt time.Time
	Role      string
	OrgUUID   string
	OrgName   string
	OrgSlug   string
}

type SelectOrganizationUseCase struct {
	userRepo       user.Repository
	orgRepo        organization.Repository
	membershipRepo organization.MembershipRepository
	tokenService   TokenService
	logger         logger.Interface
}

func NewSelectOrganizationUseCase(
	userRepo user.Repository,
	orgRepo organization.Repository,
	membershipRepo organization.MembershipRepository,
	tokenService TokenService,
	logger logger.Interface,
) *SelectOrganizationUseCase {
	return &SelectOrganizationUseCase{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *SelectOrganizationUseCase) Execute(ctx context.Context, cmd SelectOrganizationCommand) (*SelectOrganizationResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.OrganizationSlug) == 0 {
		return nil, errors.NewValidationError("organization slug is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid session")
	}

	org, err := uc.orgRepo.GetBySlug(ctx, cmd.OrganizationSlug)
	if err != nil {
		return nil, errors.NewNotFoundError("organization not found")
	}

	membership, err := uc.membershipRepo.Get(ctx, u.ID(), org.ID())
	if err != nil {
		uc.logger.Warnw("organization selection without membership",
			"user_id", u.ID(), "organization_id", org.ID())
		return nil, errors.NewForbiddenError("you are not a member of this organization")
	}

	token, expiresAt, err := uc.tokenService.Generate(TokenClaims{
		UserID:         u.ID(),
		UserUUID:       u.UUID(),
		Email:          u.Email(),
		OrganizationID: org.ID(),
		Role:           membership.Role().String(),
	})
	if err != nil {
		uc.logger.Errorw("failed to issue org token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("organization selected",
		"user_id", u.ID(),
		"organization_id", org.ID(),
		"role", membership.Role().String())

	return &SelectOrganizationResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      membership.Role().String(),
		OrgUUID:   org.UUID(),
		OrgName:   org.Name(),
		OrgSlug:   org.Slug(),
	}, nil
}
