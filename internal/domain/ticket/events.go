package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/shared/events"
)

const (
	TicketCreatedEventType       = "ticket.created"
	TicketAssignedEventType      = "ticket.assigned"
	TicketStatusChangedEventType = "ticket.status_changed"
)

// TicketCreatedEvent fires once a new ticket is persisted.
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	TicketUUID     string `json:"ticket_uuid"`
	Number         string `json:"number"`
	OrganizationID uint   `json:"organization_id"`
	IssueType      string `json:"issue_type"`
	OpenedBy       string `json:"opened_by"`
}

func NewTicketCreatedEvent(ticketID uint, ticketUUID, number string, organizationID uint, issueType, openedBy string) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", ticketID),
			EventType:   TicketCreatedEventType,
			OccurredAt:  time.Now(),
		},
		TicketID:       ticketID,
		TicketUUID:     ticketUUID,
		Number:         number,
		OrganizationID: organizationID,
		IssueType:      issueType,
		OpenedBy:       openedBy,
	}
}

// TicketAssignedEvent fires when a ticket is handed to a new assignee.
// Re-assigning the same user does not fire.
type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	TicketUUID     string `json:"ticket_uuid"`
	OrganizationID uint   `json:"organization_id"`
	AssigneeID     uint   `json:"assignee_id"`
	AssignedBy     uint   `json:"assigned_by"`
}

func NewTicketAssignedEvent(ticketID uint, ticketUUID string, organizationID, assigneeID, assignedBy uint) *TicketAssignedEvent {
	return &TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", ticketID),
			EventType:   TicketAssignedEventType,
			OccurredAt:  time.Now(),
		},
		TicketID:       ticketID,
		TicketUUID:     ticketUUID,
		OrganizationID: organizationID,
		AssigneeID:     assigneeID,
		AssignedBy:     assignedBy,
	}
}

// TicketStatusChangedEvent fires on every lifecycle transition, including
// close and reopen.
type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	TicketUUID     string `json:"ticket_uuid"`
	OrganizationID uint   `json:"organization_id"`
	OldStatus      string `json:"old_status"`
	NewStatus      string `json:"new_status"`
	ChangedBy      uint   `json:"changed_by"`
}

func NewTicketStatusChangedEvent(ticketID uint, ticketUUID string, organizationID uint, oldStatus, newStatus string, changedBy uint) *TicketStatusChangedEvent {
	return &TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", ticketID),
			EventType:   TicketStatusChangedEventType,
			OccurredAt:  time.Now(),
		},
		TicketID:       ticketID,
		TicketUUID:     ticketUUID,
		OrganizationID: organizationID,
		OldStatus:      oldStatus,
		NewStatus:      newStatus,
		ChangedBy:      changedBy,
	}
}
