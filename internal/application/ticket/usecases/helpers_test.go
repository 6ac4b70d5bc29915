package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

func buildTicket(t *testing.T, id, orgID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(orgID, "agent@example.com", "CF-1001", "9876543210", "Asha Verma", vo.IssuePayment, "Payment not reflected")
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	require.NoError(t, tk.SetNumber("TKT-20260115-0001"))
	return tk
}

func buildUser(t *testing.T, id uint, active bool) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "uuid-user", "assignee@example.com", "Priya Nair", nil, active, now, now, 1)
	require.NoError(t, err)
	return u
}
