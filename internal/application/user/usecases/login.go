package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// TokenClaims is what ends up inside an issued access token. A zero
// OrganizationID means no tenant has been selected yet.
type TokenClaims struct {
	UserID         uint
	UserUUID       string
	Email          string
	OrganizationID uint
	Role           string
}

// TokenService issues signed access tokens.
type TokenService interface {
	Generate(claims TokenClaims) (string, time.Time, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type UserDTO struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserDTO
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if len(email) == 0 {
		return nil, errors.NewValidationError("email is required")
	}
	if len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("password is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same response as a bad password so the endpoint does not leak
		// which emails exist.
		uc.logger.Infow("login failed, unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		uc.logger.Warnw("login attempt for inactive user", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Infow("login failed, bad password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokenService.Generate(TokenClaims{
		UserID:   u.ID(),
		UserUUID: u.UUID(),
		Email:    u.Email(),
	})
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      UserDTO{UUID: u.UUID(), Name: u.Name(), Email: u.Email()},
	}, nil
}
