package mappers

import (
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	model := &models.NotificationModel{
		ID:             n.ID(),
		UUID:           n.UUID(),
		OrganizationID: n.OrganizationID(),
		RecipientID:    n.RecipientID(),
		TicketID:       n.TicketID(),
		Kind:           string(n.GetKind()),
		Title:          n.Title(),
		Message:        n.Message(),
		Read:           n.IsRead(),
		CreatedAt:      n.CreatedAt().UnixMilli(),
	}
	if n.ReadAt() != nil {
		readAt := n.ReadAt().UnixMilli()
		model.ReadAt = &readAt
	}
	return model
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var readAt *time.Time
	if model.ReadAt != nil {
		r := time.UnixMilli(*model.ReadAt)
		readAt = &r
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UUID,
		model.OrganizationID,
		model.RecipientID,
		model.TicketID,
		notification.Kind(model.Kind),
		model.Title,
		model.Message,
		model.Read,
		readAt,
		time.UnixMilli(model.CreatedAt),
	)
}
