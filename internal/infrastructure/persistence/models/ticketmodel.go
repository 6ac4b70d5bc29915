package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	UUID           string `gorm:"uniqueIndex;size:36;not null"`
	Number         string `gorm:"uniqueIndex;size:50;not null"`
	OrganizationID uint   `gorm:"not null;index:idx_tickets_org_status"`
	OpenedBy       string `gorm:"size:255;not null"`
	ClientFileNo   string `gorm:"size:100;not null;index"`
	MobileNo       string `gorm:"size:30;not null;index"`
	ClientName     string `gorm:"size:255;not null"`
	IssueType      string `gorm:"size:50;not null;index"`
	Description    string `gorm:"type:text;not null"`
	Resolution     string `gorm:"type:text"`
	Status         string `gorm:"size:20;not null;index:idx_tickets_org_status"`
	AssigneeID     *uint  `gorm:"index"`
	ClosedOn       *int64
	ClosedBy       *uint
	Attachments    datatypes.JSON `gorm:"type:json"`
	Version        int            `gorm:"not null;default:1"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`

	// No foreign key constraints or associations; relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketSequenceModel backs the per-organization, per-day ticket number
// counter. One row per (organization, day); Counter is bumped inside the
// insert transaction.
type TicketSequenceModel struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"not null;uniqueIndex:idx_ticket_seq_org_day"`
	Day            string `gorm:"size:8;not null;uniqueIndex:idx_ticket_seq_org_day"`
	Counter        uint   `gorm:"not null;default:0"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}
