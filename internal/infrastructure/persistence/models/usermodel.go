package models

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	UUID         string  `gorm:"uniqueIndex;size:36;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	Name         string  `gorm:"size:255;not null"`
	PasswordHash *string `gorm:"size:255"`
	Active       bool    `gorm:"not null;default:true"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
