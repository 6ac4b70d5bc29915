package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OrganizationModel{},
		&models.MembershipModel{},
		&models.TicketModel{},
		&models.TicketSequenceModel{},
		&models.NotificationModel{},
	}
}
