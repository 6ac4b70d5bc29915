package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type AttachmentDTO struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
	URL  string `json:"url"`
}

type TicketDTO struct {
	UUID         string          `json:"uuid"`
	Number       string          `json:"number"`
	ClientFileNo string          `json:"client_file_no"`
	MobileNo     string          `json:"mobile_no"`
	ClientName   string          `json:"name_of_client"`
	IssueType    string          `json:"issue_type"`
	Description  string          `json:"description"`
	Resolution   string          `json:"resolution,omitempty"`
	Status       string          `json:"status"`
	OpenedBy     string          `json:"opened_by"`
	AssigneeID   *uint           `json:"assignee_id"`
	AssigneeName string          `json:"assignee_name,omitempty"`
	ClosedOn     *time.Time      `json:"closed_on"`
	ClosedByName string          `json:"closed_by_name,omitempty"`
	Attachments  []AttachmentDTO `json:"attachments"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type TicketListItemDTO struct {
	UUID         string     `json:"uuid"`
	Number       string     `json:"number"`
	ClientFileNo string     `json:"client_file_no"`
	MobileNo     string     `json:"mobile_no"`
	ClientName   string     `json:"name_of_client"`
	IssueType    string     `json:"issue_type"`
	Status       string     `json:"status"`
	AssigneeID   *uint      `json:"assignee_id"`
	AssigneeName string     `json:"assignee_name,omitempty"`
	ClosedOn     *time.Time `json:"closed_on"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DashboardStatsDTO backs the landing page tiles.
type DashboardStatsDTO struct {
	Total              int64   `json:"total"`
	Open               int64   `json:"open"`
	InProgress         int64   `json:"in_progress"`
	Closed             int64   `json:"closed"`
	Assigned           int64   `json:"assigned"`
	ResolvedToday      int64   `json:"resolved_today"`
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
}

// ToTicketDTO maps the aggregate plus resolved display names. Name lookups
// are the caller's job so listings can batch them.
func ToTicketDTO(t *ticket.Ticket, assigneeName, closedByName string) *TicketDTO {
	if t == nil {
		return nil
	}

	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{Name: a.Name, Size: a.Size, MIME: a.MIME, URL: a.URL})
	}

	return &TicketDTO{
		UUID:         t.UUID(),
		Number:       t.Number(),
		ClientFileNo: t.ClientFileNo(),
		MobileNo:     t.MobileNo(),
		ClientName:   t.ClientName(),
		IssueType:    t.IssueType().String(),
		Description:  t.Description(),
		Resolution:   t.Resolution(),
		Status:       t.Status().String(),
		OpenedBy:     t.OpenedBy(),
		AssigneeID:   t.AssigneeID(),
		AssigneeName: assigneeName,
		ClosedOn:     t.ClosedOn(),
		ClosedByName: closedByName,
		Attachments:  attachments,
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, assigneeName string) TicketListItemDTO {
	return TicketListItemDTO{
		UUID:         t.UUID(),
		Number:       t.Number(),
		ClientFileNo: t.ClientFileNo(),
		MobileNo:     t.MobileNo(),
		ClientName:   t.ClientName(),
		IssueType:    t.IssueType().String(),
		Status:       t.Status().String(),
		AssigneeID:   t.AssigneeID(),
		AssigneeName: assigneeName,
		ClosedOn:     t.ClosedOn(),
		CreatedAt:    t.CreatedAt(),
	}
}
