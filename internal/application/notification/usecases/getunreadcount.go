package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUnreadCountQuery struct {
	OrganizationID uint
	RecipientID    uint
}

type GetUnreadCountUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewGetUnreadCountUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, query GetUnreadCountQuery) (int64, error) {
	if query.OrganizationID == 0 {
		return 0, errors.NewValidationError("organization ID is required")
	}
	if query.RecipientID == 0 {
		return 0, errors.NewValidationError("recipient ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.OrganizationID, query.RecipientID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "recipient_id", query.RecipientID)
		return 0, errors.NewInternalError("failed to count unread notifications")
	}
	return count, nil
}
