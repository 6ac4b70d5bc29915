package usecases

import (
	"time"

	"helpdesk/internal/domain/notification"
)

type NotificationDTO struct {
	UUID       string     `json:"uuid"`
	TicketID   uint       `json:"ticket_id"`
	TicketUUID string     `json:"ticket_uuid,omitempty"`
	Kind       string     `json:"kind"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toNotificationDTO(n *notification.Notification, ticketUUID string) NotificationDTO {
	return NotificationDTO{
		UUID:       n.UUID(),
		TicketID:   n.TicketID(),
		TicketUUID: ticketUUID,
		Kind:       string(n.GetKind()),
		Title:      n.Title(),
		Message:    n.Message(),
		Read:       n.IsRead(),
		ReadAt:     n.ReadAt(),
		CreatedAt:  n.CreatedAt(),
	}
}
