package ticket

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// SearchFilter narrows a ticket listing. OrganizationID is mandatory;
// Query matches mobile number, client file number, client name or ticket
// number as a case-insensitive substring.
type SearchFilter struct {
	OrganizationID uint
	Query          string
	Status         *vo.Status
	AssigneeID     *uint
	Page           int
	PageSize       int
}

// StatusCounts holds the per-status totals for one organization.
type StatusCounts struct {
	Total      int64
	Open       int64
	InProgress int64
	Closed     int64
	Assigned   int64
}

// Repository is the persistence port for the ticket aggregate.
type Repository interface {
	// Save inserts a new ticket, assigning its id and number.
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByUUID(ctx context.Context, uuid string) (*Ticket, error)
	// Search returns the filtered page newest-first plus the total match
	// count before paging.
	Search(ctx context.Context, filter SearchFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, organizationID uint) (StatusCounts, error)
	// CountClosedSince counts tickets closed at or after the given instant;
	// the dashboard uses midnight for its resolved-today tile.
	CountClosedSince(ctx context.Context, organizationID uint, since time.Time) (int64, error)
	// AverageResolutionHours is the mean closed_on minus created_at over
	// closed tickets, in hours. Zero when no tickets are closed.
	AverageResolutionHours(ctx context.Context, organizationID uint) (float64, error)
}

// NumberGenerator issues the next human-readable ticket number for an
// organization. Implementations must be safe under concurrent creates.
type NumberGenerator interface {
	Generate(ctx context.Context, organizationID uint) (string, error)
}
