package models

type OrganizationModel struct {
	ID             uint   `gorm:"primaryKey"`
	UUID           string `gorm:"uniqueIndex;size:36;not null"`
	Name           string `gorm:"size:255;not null"`
	Slug           string `gorm:"uniqueIndex;size:100;not null"`
	PrimaryColor   string `gorm:"size:20"`
	SecondaryColor string `gorm:"size:20"`
	AccentColor    string `gorm:"size:20"`
	LogoURL        string `gorm:"size:500"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type MembershipModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_membership_user_org"`
	OrganizationID uint   `gorm:"not null;uniqueIndex:idx_membership_user_org;index"`
	Role           string `gorm:"size:20;not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

func (MembershipModel) TableName() string {
	return "organization_memberships"
}
