package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/domain/shared/events"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root of the helpdesk domain. A ticket always
// belongs to exactly one organization; the organization id is fixed at
// creation and scopes every read and write.
type Ticket struct {
	id             uint
	uuid           string
	number         string
	organizationID uint
	openedBy       string
	clientFileNo   string
	mobileNo       string
	clientName     string
	issueType      vo.IssueType
	description    string
	resolution     string
	status         vo.Status
	assigneeID     *uint
	closedOn       *time.Time
	closedBy       *uint
	attachments    []Attachment
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	events         []events.DomainEvent
}

// NewTicket builds a ticket in status open. All client-facing fields are
// required; validation runs before any persistence call.
func NewTicket(
	organizationID uint,
	openedBy string,
	clientFileNo string,
	mobileNo string,
	clientName string,
	issueType vo.IssueType,
	description string,
) (*Ticket, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(openedBy) == 0 {
		return nil, fmt.Errorf("opener identity is required")
	}
	if len(clientFileNo) == 0 {
		return nil, fmt.Errorf("client file number is required")
	}
	if len(mobileNo) == 0 {
		return nil, fmt.Errorf("mobile number is required")
	}
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	t := &Ticket{
		uuid:           uuid.NewString(),
		organizationID: organizationID,
		openedBy:       openedBy,
		clientFileNo:   clientFileNo,
		mobileNo:       mobileNo,
		clientName:     clientName,
		issueType:      issueType,
		description:    description,
		status:         vo.StatusOpen,
		attachments:    []Attachment{},
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}
	return t, nil
}

// ReconstructTicket rebuilds a ticket from persistence without recording
// events or re-running creation defaults.
func ReconstructTicket(
	id uint,
	ticketUUID string,
	number string,
	organizationID uint,
	openedBy string,
	clientFileNo string,
	mobileNo string,
	clientName string,
	issueType vo.IssueType,
	description string,
	resolution string,
	status vo.Status,
	assigneeID *uint,
	closedOn *time.Time,
	closedBy *uint,
	attachments []Attachment,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Ticket{
		id:             id,
		uuid:           ticketUUID,
		number:         number,
		organizationID: organizationID,
		openedBy:       openedBy,
		clientFileNo:   clientFileNo,
		mobileNo:       mobileNo,
		clientName:     clientName,
		issueType:      issueType,
		description:    description,
		resolution:     resolution,
		status:         status,
		assigneeID:     assigneeID,
		closedOn:       closedOn,
		closedBy:       closedBy,
		attachments:    attachments,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) UUID() string         { return t.uuid }
func (t *Ticket) Number() string       { return t.number }
func (t *Ticket) OrganizationID() uint { return t.organizationID }
func (t *Ticket) OpenedBy() string     { return t.openedBy }
func (t *Ticket) ClientFileNo() string { return t.clientFileNo }
func (t *Ticket) MobileNo() string     { return t.mobileNo }
func (t *Ticket) ClientName() string   { return t.clientName }

func (t *Ticket) IssueType() vo.IssueType { return t.issueType }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Resolution() string      { return t.resolution }
func (t *Ticket) Status() vo.Status       { return t.status }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) ClosedOn() *time.Time    { return t.closedOn }
func (t *Ticket) ClosedBy() *uint         { return t.closedBy }
func (t *Ticket) Version() int            { return t.version }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) Attachments() []Attachment {
	out := make([]Attachment, len(t.attachments))
	copy(out, t.attachments)
	return out
}

// SetID is called once by the repository after the insert assigns the id.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber is called once by the repository; the number comes from the
// server-side sequence, never from the client.
func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// AssignTo sets the assignee and records an assignment event when the
// assignee actually changes. Assigning the current assignee is a no-op.
func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.assigneeID != nil && *t.assigneeID == assigneeID {
		return nil
	}

	t.assigneeID = &assigneeID
	t.touch()

	t.recordEvent(NewTicketAssignedEvent(t.id, t.uuid, t.organizationID, assigneeID, assignedBy))
	return nil
}

// Unassign clears the assignee without notification side effects.
func (t *Ticket) Unassign() {
	if t.assigneeID == nil {
		return
	}
	t.assigneeID = nil
	t.touch()
}

// ChangeStatus applies the lifecycle state machine. Closing stamps
// closed_on/closed_by together; reopening clears both.
func (t *Ticket) ChangeStatus(newStatus vo.Status, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	oldStatus := t.status
	t.status = newStatus
	t.touch()

	switch {
	case newStatus.IsClosed():
		now := time.Now()
		t.closedOn = &now
		t.closedBy = &changedBy
	case oldStatus.IsClosed():
		// Reopen: the closed markers no longer describe the ticket.
		t.closedOn = nil
		t.closedBy = nil
	}

	t.recordEvent(NewTicketStatusChangedEvent(t.id, t.uuid, t.organizationID, oldStatus.String(), newStatus.String(), changedBy))
	return nil
}

// Close transitions to closed with a resolution note.
func (t *Ticket) Close(resolution string, closedBy uint) error {
	if t.status.IsClosed() {
		return nil
	}
	if err := t.ChangeStatus(vo.StatusClosed, closedBy); err != nil {
		return err
	}
	if len(resolution) > 0 {
		t.resolution = resolution
	}
	return nil
}

// Reopen moves a closed ticket back to open.
func (t *Ticket) Reopen(reopenedBy uint) error {
	if !t.status.IsClosed() {
		return fmt.Errorf("only closed tickets can be reopened")
	}
	return t.ChangeStatus(vo.StatusOpen, reopenedBy)
}

// UpdateDetails applies a partial field edit. Nil pointers leave fields
// untouched; provided required fields must stay non-empty.
func (t *Ticket) UpdateDetails(
	clientFileNo *string,
	mobileNo *string,
	clientName *string,
	issueType *vo.IssueType,
	description *string,
	resolution *string,
) error {
	if clientFileNo != nil {
		if len(*clientFileNo) == 0 {
			return fmt.Errorf("client file number cannot be empty")
		}
		t.clientFileNo = *clientFileNo
	}
	if mobileNo != nil {
		if len(*mobileNo) == 0 {
			return fmt.Errorf("mobile number cannot be empty")
		}
		t.mobileNo = *mobileNo
	}
	if clientName != nil {
		if len(*clientName) == 0 {
			return fmt.Errorf("client name cannot be empty")
		}
		t.clientName = *clientName
	}
	if issueType != nil {
		if !issueType.IsValid() {
			return fmt.Errorf("invalid issue type")
		}
		t.issueType = *issueType
	}
	if description != nil {
		if len(*description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		t.description = *description
	}
	if resolution != nil {
		t.resolution = *resolution
	}

	t.touch()
	return nil
}

// AddAttachment links an already-validated attachment to the ticket.
func (t *Ticket) AddAttachment(att Attachment) {
	t.attachments = append(t.attachments, att)
	t.touch()
}

// Validate re-checks the aggregate invariants.
func (t *Ticket) Validate() error {
	if t.organizationID == 0 {
		return fmt.Errorf("organization ID is required")
	}
	if len(t.clientFileNo) == 0 {
		return fmt.Errorf("client file number is required")
	}
	if len(t.mobileNo) == 0 {
		return fmt.Errorf("mobile number is required")
	}
	if len(t.clientName) == 0 {
		return fmt.Errorf("client name is required")
	}
	if !t.issueType.IsValid() {
		return fmt.Errorf("invalid issue type")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.status.IsClosed() && (t.closedOn == nil || t.closedBy == nil) {
		return fmt.Errorf("closed tickets require closed_on and closed_by")
	}
	if !t.status.IsClosed() && (t.closedOn != nil || t.closedBy != nil) {
		return fmt.Errorf("closed_on and closed_by are only valid on closed tickets")
	}
	return nil
}

// GetEvents returns events recorded since the last ClearEvents.
func (t *Ticket) GetEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(t.events))
	copy(out, t.events)
	return out
}

func (t *Ticket) ClearEvents() {
	t.events = nil
}

func (t *Ticket) recordEvent(event events.DomainEvent) {
	t.events = append(t.events, event)
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}
