package usecases

import (
	"context"
	"io"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByUUIDFunc              func(ctx context.Context, uuid string) (*ticket.Ticket, error)
	SearchFunc                 func(ctx context.Context, filter ticket.SearchFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc          func(ctx context.Context, organizationID uint) (ticket.StatusCounts, error)
	CountClosedSinceFunc       func(ctx context.Context, organizationID uint, since time.Time) (int64, error)
	AverageResolutionHoursFunc func(ctx context.Context, organizationID uint) (float64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, filter ticket.SearchFilter) ([]*ticket.Ticket, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, organizationID uint) (ticket.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, organizationID)
	}
	return ticket.StatusCounts{}, nil
}

func (m *mockTicketRepository) CountClosedSince(ctx context.Context, organizationID uint, since time.Time) (int64, error) {
	if m.CountClosedSinceFunc != nil {
		return m.CountClosedSinceFunc(ctx, organizationID, since)
	}
	return 0, nil
}

func (m *mockTicketRepository) AverageResolutionHours(ctx context.Context, organizationID uint) (float64, error) {
	if m.AverageResolutionHoursFunc != nil {
		return m.AverageResolutionHoursFunc(ctx, organizationID)
	}
	return 0, nil
}

type mockUserRepository struct {
	SaveFunc               func(ctx context.Context, u *user.User) error
	UpdateFunc             func(ctx context.Context, u *user.User) error
	GetByIDFunc            func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*user.User, error)
	ListByIDsFunc          func(ctx context.Context, ids []uint) ([]*user.User, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*user.User, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockFileStore struct {
	StoreFunc func(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
}

func (m *mockFileStore) Store(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, key, content, size, contentType)
	}
	return "/uploads/" + key, nil
}
