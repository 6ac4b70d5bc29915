package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

type mockNotificationRepository struct {
	SaveFunc        func(ctx context.Context, n *notification.Notification) error
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	GetByUUIDFunc   func(ctx context.Context, uuid string) (*notification.Notification, error)
	ListFunc        func(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error)
	CountUnreadFunc func(ctx context.Context, organizationID, recipientID uint) (int64, error)
	MarkAllReadFunc func(ctx context.Context, organizationID, recipientID uint) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByUUID(ctx context.Context, uuid string) (*notification.Notification, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockNotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, organizationID, recipientID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, organizationID, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, organizationID, recipientID uint) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, organizationID, recipientID)
	}
	return nil
}

type mockTicketRepository struct {
	GetByIDFunc   func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByUUIDFunc func(ctx context.Context, uuid string) (*ticket.Ticket, error)
	UpdateFunc    func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

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
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, organizationID uint) (ticket.StatusCounts, error) {
	return ticket.StatusCounts{}, nil
}

func (m *mockTicketRepository) CountClosedSince(ctx context.Context, organizationID uint, since time.Time) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) AverageResolutionHours(ctx context.Context, organizationID uint) (float64, error) {
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*user.User, error) {
	return nil, nil
}

type mockMailer struct {
	SendTicketAssignedFunc func(ctx context.Context, to, assigneeName, ticketNumber, clientName string) error
	sent                   int
}

func (m *mockMailer) SendTicketAssigned(ctx context.Context, to, assigneeName, ticketNumber, clientName string) error {
	m.sent++
	if m.SendTicketAssignedFunc != nil {
		return m.SendTicketAssignedFunc(ctx, to, assigneeName, ticketNumber, clientName)
	}
	return nil
}

type mockPusher struct {
	PublishNotificationFunc func(ctx context.Context, n *notification.Notification) error
	pushed                  int
}

func (m *mockPusher) PublishNotification(ctx context.Context, n *notification.Notification) error {
	m.pushed++
	if m.PublishNotificationFunc != nil {
		return m.PublishNotificationFunc(ctx, n)
	}
	return nil
}

type mockEventPublisher struct {
	published []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return nil
}
