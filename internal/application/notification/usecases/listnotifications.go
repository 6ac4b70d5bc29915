package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListNotificationsQuery struct {
	OrganizationID uint
	RecipientID    uint
	UnreadOnly     bool
	Page           int
	PageSize       int
}

type ListNotificationsResult struct {
	Items    []NotificationDTO
	Total    int64
	Page     int
	PageSize int
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	items, total, err := uc.notificationRepo.List(ctx, notification.ListFilter{
		OrganizationID: query.OrganizationID,
		RecipientID:    query.RecipientID,
		UnreadOnly:     query.UnreadOnly,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "recipient_id", query.RecipientID)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, toNotificationDTO(n, ""))
	}

	return &ListNotificationsResult{
		Items:    dtos,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
