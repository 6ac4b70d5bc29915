package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(gdb *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     gdb,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{"is_read": model.Read, "read_at": model.ReadAt})
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) GetByUUID(ctx context.Context, uuid string) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("uuid = ?", uuid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).
		Where("organization_id = ? AND recipient_id = ?", filter.OrganizationID, filter.RecipientID)

	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var rows []models.NotificationModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(rows))
	for i := range rows {
		n, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, organizationID, recipientID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.NotificationModel{}).
		Where("organization_id = ? AND recipient_id = ? AND is_read = ?", organizationID, recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, organizationID, recipientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	err := tx.Model(&models.NotificationModel{}).
		Where("organization_id = ? AND recipient_id = ? AND is_read = ?", organizationID, recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
