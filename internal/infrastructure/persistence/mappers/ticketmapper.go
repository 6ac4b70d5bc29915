package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence
// models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachments, err := json.Marshal(t.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachments: %w", err)
	}

	model := &models.TicketModel{
		ID:             t.ID(),
		UUID:           t.UUID(),
		Number:         t.Number(),
		OrganizationID: t.OrganizationID(),
		OpenedBy:       t.OpenedBy(),
		ClientFileNo:   t.ClientFileNo(),
		MobileNo:       t.MobileNo(),
		ClientName:     t.ClientName(),
		IssueType:      t.IssueType().String(),
		Description:    t.Description(),
		Resolution:     t.Resolution(),
		Status:         t.Status().String(),
		AssigneeID:     t.AssigneeID(),
		ClosedBy:       t.ClosedBy(),
		Attachments:    attachments,
		Version:        t.Version(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedOn() != nil {
		closed := t.ClosedOn().UnixMilli()
		model.ClosedOn = &closed
	}

	return model, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	issueType, err := vo.NewIssueType(model.IssueType)
	if err != nil {
		return nil, fmt.Errorf("invalid issue type in ticket %d: %w", model.ID, err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket %d: %w", model.ID, err)
	}

	var attachments []ticket.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments of ticket %d: %w", model.ID, err)
		}
	}

	var closedOn *time.Time
	if model.ClosedOn != nil {
		c := time.UnixMilli(*model.ClosedOn)
		closedOn = &c
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UUID,
		model.Number,
		model.OrganizationID,
		model.OpenedBy,
		model.ClientFileNo,
		model.MobileNo,
		model.ClientName,
		issueType,
		model.Description,
		model.Resolution,
		status,
		model.AssigneeID,
		closedOn,
		model.ClosedBy,
		attachments,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
