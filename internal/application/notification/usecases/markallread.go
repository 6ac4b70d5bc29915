package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkAllReadCommand struct {
	OrganizationID uint
	RecipientID    uint
}

type MarkAllReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if cmd.OrganizationID == 0 {
		return errors.NewValidationError("organization ID is required")
	}
	if cmd.RecipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	if err := uc.notificationRepo.MarkAllRead(ctx, cmd.OrganizationID, cmd.RecipientID); err != nil {
		uc.logger.Errorw("failed to mark notifications read", "error", err, "recipient_id", cmd.RecipientID)
		return errors.NewInternalError("failed to mark notifications read")
	}
	return nil
}
