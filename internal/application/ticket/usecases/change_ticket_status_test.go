package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestChangeTicketStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(tk *ticket.Ticket, publisher *mockEventPublisher) *ChangeTicketStatusUseCase {
		repo := &mockTicketRepository{
			GetByUUIDFunc: func(ctx context.Context, uuid string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		return NewChangeTicketStatusUseCase(repo, publisher, logger.NewNopLogger())
	}

	t.Run("open to in_progress", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		publisher := &mockEventPublisher{}
		uc := newUseCase(tk, publisher)

		result, err := uc.Execute(ctx, ChangeTicketStatusCommand{UUID: tk.UUID(), OrganizationID: 1, Status: "in_progress", ChangedBy: 9})
		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
		assert.Nil(t, result.ClosedOn)
		require.Len(t, publisher.published, 1)
	})

	t.Run("closing stores resolution and stamps closed_on", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		uc := newUseCase(tk, &mockEventPublisher{})

		result, err := uc.Execute(ctx, ChangeTicketStatusCommand{
			UUID:           tk.UUID(),
			OrganizationID: 1,
			Status:         "closed",
			ChangedBy:      9,
			Resolution:     "<p>resolved over phone</p>",
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
		require.NotNil(t, result.ClosedOn)
		assert.Equal(t, "resolved over phone", tk.Resolution())
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		require.NoError(t, tk.ChangeStatus("in_progress", 9))
		tk.ClearEvents()
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, ChangeTicketStatusCommand{UUID: tk.UUID(), OrganizationID: 1, Status: "open", ChangedBy: 9})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		tk := buildTicket(t, 7, 1)
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, ChangeTicketStatusCommand{UUID: tk.UUID(), OrganizationID: 1, Status: "resolved", ChangedBy: 9})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("cross-organization reads as missing", func(t *testing.T) {
		tk := buildTicket(t, 7, 2)
		uc := newUseCase(tk, &mockEventPublisher{})

		_, err := uc.Execute(ctx, ChangeTicketStatusCommand{UUID: tk.UUID(), OrganizationID: 1, Status: "closed", ChangedBy: 9})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
