package models

type NotificationModel struct {
	ID             uint   `gorm:"primaryKey"`
	UUID           string `gorm:"uniqueIndex;size:36;not null"`
	OrganizationID uint   `gorm:"not null;index:idx_notifications_org_recipient"`
	RecipientID    uint   `gorm:"not null;index:idx_notifications_org_recipient"`
	TicketID       uint   `gorm:"not null;index"`
	Kind           string `gorm:"size:50;not null"`
	Title          string `gorm:"size:255;not null"`
	Message        string `gorm:"type:text"`
	Read           bool   `gorm:"column:is_read;not null;default:false;index"`
	ReadAt         *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
