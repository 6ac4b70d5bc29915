package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(tk *ticket.Ticket, publisher *mockEventPublisher) *UpdateTicketUseCase {
		ticketRepo := &mockTicketRepository{
			GetByUUIDFunc: func(ctx context.Context, uuid string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return buildUser(t, id, true), nil
			},
		}
		return NewUpdateTicketUseCase(ticketRepo, userRepo, publisher, logger.NewNopLogger())
	}

	t.Run("partial field update", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			ClientName:     strPtr("Ravi Kumar"),
			IssueType:      strPtr("GST Filing"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", tk.ClientName())
		assert.Equal(t, "GST Filing", tk.IssueType().String())
		assert.Equal(t, "CF-1001", tk.ClientFileNo(), "untouched field kept")
	})

	t.Run("assignment change publishes event", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		publisher := &mockEventPublisher{}
		uc := newUseCase(tk, publisher)

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			AssigneeID:     uintPtr(42),
		})
		require.NoError(t, err)
		require.Len(t, publisher.published, 1)
		_, ok := publisher.published[0].(*ticket.TicketAssignedEvent)
		assert.True(t, ok)
	})

	t.Run("zero assignee clears assignment silently", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		require.NoError(t, tk.AssignTo(42, 9))
		tk.ClearEvents()
		publisher := &mockEventPublisher{}
		uc := newUseCase(tk, publisher)

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			AssigneeID:     uintPtr(0),
		})
		require.NoError(t, err)
		assert.Nil(t, tk.AssigneeID())
		assert.Empty(t, publisher.published)
	})

	t.Run("status change through update", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		uc := newUseCase(tk, &mockEventPublisher{})

		result, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			Status:         strPtr("in_progress"),
		})
		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
	})

	t.Run("invalid transition through update is a conflict", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		require.NoError(t, tk.ChangeStatus("in_progress", 9))
		tk.ClearEvents()
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			Status:         strPtr("open"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("emptying a required field rejected", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			UpdatedBy:      9,
			MobileNo:       strPtr("   "),
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("cross-organization reads as missing", func(t *testing.T) {
		tk := buildTicket(t, 7, 2)
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{UUID: tk.UUID(), OrganizationID: 1, UpdatedBy: 9})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
