package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.TicketModel{},
		&models.TicketSequenceModel{},
		&models.UserModel{},
		&models.OrganizationModel{},
		&models.MembershipModel{},
		&models.NotificationModel{},
	)
	require.NoError(t, err)

	return gdb
}

func createTestTicket(t *testing.T, orgID uint, clientName string) *ticket.Ticket {
	tk, err := ticket.NewTicket(orgID, "reception@firm.test", "CF-1001", "9876543210", clientName, vo.IssueDeclaration, "Client asked for a declaration copy")
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	t.Run("save assigns id and generated number", func(t *testing.T) {
		tk := createTestTicket(t, 1, "Asha Rao")

		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())

		day := time.Now().UTC().Format("20060102")
		assert.Equal(t, fmt.Sprintf("TKT-%s-0001", day), tk.Number())
	})

	t.Run("numbers advance per organization", func(t *testing.T) {
		second := createTestTicket(t, 1, "Vikram Shah")
		require.NoError(t, repo.Save(ctx, second))

		otherOrg := createTestTicket(t, 2, "Meera Iyer")
		require.NoError(t, repo.Save(ctx, otherOrg))

		day := time.Now().UTC().Format("20060102")
		assert.Equal(t, fmt.Sprintf("TKT-%s-0002", day), second.Number())
		assert.Equal(t, fmt.Sprintf("TKT-%s-0001", day), otherOrg.Number())
	})

	t.Run("preset number is kept", func(t *testing.T) {
		tk := createTestTicket(t, 3, "Preset Number")
		require.NoError(t, tk.SetNumber("TKT-20250101-0042"))

		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.Equal(t, "TKT-20250101-0042", tk.Number())
	})

	t.Run("duplicate number fails", func(t *testing.T) {
		tk := createTestTicket(t, 3, "Duplicate Number")
		require.NoError(t, tk.SetNumber("TKT-20250101-0042"))

		err := repo.Save(ctx, tk)
		assert.Error(t, err)
	})
}

func TestTicketRepository_GetByUUID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	tk := createTestTicket(t, 1, "Asha Rao")
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("found", func(t *testing.T) {
		found, err := repo.GetByUUID(ctx, tk.UUID())
		require.NoError(t, err)
		assert.Equal(t, tk.ID(), found.ID())
		assert.Equal(t, tk.Number(), found.Number())
		assert.Equal(t, tk.ClientName(), found.ClientName())
		assert.Equal(t, vo.StatusOpen, found.Status())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByUUID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.Error(t, err)
	})
}

func TestTicketRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	tk := createTestTicket(t, 1, "Asha Rao")
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("assignment round trips", func(t *testing.T) {
		require.NoError(t, tk.AssignTo(7, 2))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found.AssigneeID())
		assert.Equal(t, uint(7), *found.AssigneeID())
		assert.Equal(t, vo.StatusOpen, found.Status())
	})

	t.Run("close stamps markers and reopen clears them", func(t *testing.T) {
		require.NoError(t, tk.Close("resolved over phone", 7))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusClosed, found.Status())
		assert.NotNil(t, found.ClosedOn())
		require.NotNil(t, found.ClosedBy())
		assert.Equal(t, uint(7), *found.ClosedBy())
		assert.Equal(t, "resolved over phone", found.Resolution())

		require.NoError(t, found.Reopen(2))
		require.NoError(t, repo.Update(ctx, found))

		reopened, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, reopened.Status())
		assert.Nil(t, reopened.ClosedOn())
		assert.Nil(t, reopened.ClosedBy())
	})
}

func TestTicketRepository_Search(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	seed := func(orgID uint, clientName, fileNo, mobile string, status vo.Status, assigneeID *uint) *ticket.Ticket {
		tk, err := ticket.NewTicket(orgID, "reception@firm.test", fileNo, mobile, clientName, vo.IssuePayment, "seeded ticket")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tk))

		if assigneeID != nil {
			require.NoError(t, tk.AssignTo(*assigneeID, 1))
		}
		if status != vo.StatusOpen {
			require.NoError(t, tk.ChangeStatus(status, 1))
		}
		if assigneeID != nil || status != vo.StatusOpen {
			require.NoError(t, repo.Update(ctx, tk))
		}
		return tk
	}

	agent := uint(5)
	seed(1, "Asha Rao", "CF-1001", "9876543210", vo.StatusOpen, nil)
	seed(1, "Vikram Shah", "CF-1002", "9123456780", vo.StatusInProgress, &agent)
	seed(1, "Meera Iyer", "CF-1003", "9000000000", vo.StatusClosed, nil)
	seed(2, "Asha Rao", "CF-2001", "8888888888", vo.StatusOpen, nil)

	t.Run("scoped to organization", func(t *testing.T) {
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, results, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		closed := vo.StatusClosed
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Status: &closed, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Meera Iyer", results[0].ClientName())
	})

	t.Run("assignee filter", func(t *testing.T) {
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, AssigneeID: &agent, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Vikram Shah", results[0].ClientName())
	})

	t.Run("query matches client name case-insensitively", func(t *testing.T) {
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Query: "asha", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Asha Rao", results[0].ClientName())
	})

	t.Run("query matches file number and mobile", func(t *testing.T) {
		_, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Query: "cf-1002", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Query: "9000000", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("pagination caps results but reports full total", func(t *testing.T) {
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, results, 2)

		results, _, err = repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Query: "nonexistent", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, results)
	})
}

func TestTicketRepository_Search_NewestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	// Insert rows directly so created_at values are hours apart and the
	// insertion order disagrees with the expected result order.
	base := time.Now().Add(-48 * time.Hour).UnixMilli()
	ages := []struct {
		uuid       string
		number     string
		clientName string
		createdAt  int64
	}{
		{"aaaaaaaa-0000-0000-0000-000000000001", "TKT-20250101-0001", "Middle", base + 6*3600*1000},
		{"aaaaaaaa-0000-0000-0000-000000000002", "TKT-20250101-0002", "Newest", base + 12*3600*1000},
		{"aaaaaaaa-0000-0000-0000-000000000003", "TKT-20250101-0003", "Oldest", base},
	}
	for _, row := range ages {
		require.NoError(t, gdb.Create(&models.TicketModel{
			UUID:           row.uuid,
			Number:         row.number,
			OrganizationID: 1,
			OpenedBy:       "reception@firm.test",
			ClientFileNo:   "CF-1001",
			MobileNo:       "9876543210",
			ClientName:     row.clientName,
			IssueType:      string(vo.IssuePayment),
			Description:    "seeded",
			Status:         string(vo.StatusOpen),
			Version:        1,
			CreatedAt:      row.createdAt,
			UpdatedAt:      row.createdAt,
		}).Error)
	}

	results, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, results, 3)
	assert.Equal(t, "Newest", results[0].ClientName())
	assert.Equal(t, "Middle", results[1].ClientName())
	assert.Equal(t, "Oldest", results[2].ClientName())
}

func TestTicketRepository_CountByStatus(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	t.Run("empty organization", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusCounts{}, counts)
	})

	t.Run("counts split by status and assignment", func(t *testing.T) {
		agent := uint(5)

		open := createTestTicket(t, 1, "Open One")
		require.NoError(t, repo.Save(ctx, open))

		assigned := createTestTicket(t, 1, "In Progress")
		require.NoError(t, repo.Save(ctx, assigned))
		require.NoError(t, assigned.AssignTo(agent, 1))
		require.NoError(t, assigned.ChangeStatus(vo.StatusInProgress, 1))
		require.NoError(t, repo.Update(ctx, assigned))

		closed := createTestTicket(t, 1, "Closed One")
		require.NoError(t, repo.Save(ctx, closed))
		require.NoError(t, closed.Close("done", 1))
		require.NoError(t, repo.Update(ctx, closed))

		otherOrg := createTestTicket(t, 2, "Other Org")
		require.NoError(t, repo.Save(ctx, otherOrg))

		counts, err := repo.CountByStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts.Total)
		assert.Equal(t, int64(1), counts.Open)
		assert.Equal(t, int64(1), counts.InProgress)
		assert.Equal(t, int64(1), counts.Closed)
		assert.Equal(t, int64(1), counts.Assigned)
	})
}

func TestTicketRepository_CountByStatus_MatchesFilteredTotals(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	agent := uint(5)
	seed := func(orgID uint, status vo.Status, assign bool) {
		tk := createTestTicket(t, orgID, "Cross Check")
		require.NoError(t, repo.Save(ctx, tk))

		dirty := false
		if assign {
			require.NoError(t, tk.AssignTo(agent, 1))
			dirty = true
		}
		if status == vo.StatusInProgress {
			require.NoError(t, tk.ChangeStatus(vo.StatusInProgress, 1))
			dirty = true
		}
		if status == vo.StatusClosed {
			require.NoError(t, tk.Close("done", 1))
			dirty = true
		}
		if dirty {
			require.NoError(t, repo.Update(ctx, tk))
		}
	}

	seed(1, vo.StatusOpen, false)
	seed(1, vo.StatusOpen, true)
	seed(1, vo.StatusOpen, false)
	seed(1, vo.StatusInProgress, true)
	seed(1, vo.StatusInProgress, false)
	seed(1, vo.StatusClosed, false)
	seed(2, vo.StatusOpen, false)

	counts, err := repo.CountByStatus(ctx, 1)
	require.NoError(t, err)

	// The aggregated counters must agree with independent status-filtered
	// queries over the same rows.
	countFor := func(status vo.Status) int64 {
		_, total, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Status: &status, Page: 1, PageSize: 1})
		require.NoError(t, err)
		return total
	}

	assert.Equal(t, countFor(vo.StatusOpen), counts.Open)
	assert.Equal(t, countFor(vo.StatusInProgress), counts.InProgress)
	assert.Equal(t, countFor(vo.StatusClosed), counts.Closed)

	_, unfiltered, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, unfiltered, counts.Total)
	assert.Equal(t, counts.Total, counts.Open+counts.InProgress+counts.Closed)

	_, assigned, err := repo.Search(ctx, ticket.SearchFilter{OrganizationID: 1, AssigneeID: &agent, Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, assigned, counts.Assigned)
}

func TestTicketRepository_CountClosedSince(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	midnight := time.Now().Truncate(24 * time.Hour)

	t.Run("zero without closed tickets", func(t *testing.T) {
		count, err := repo.CountClosedSince(ctx, 1, midnight)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("counts only tickets closed in the window", func(t *testing.T) {
		today := createTestTicket(t, 1, "Closed Today")
		require.NoError(t, repo.Save(ctx, today))
		require.NoError(t, today.Close("done", 1))
		require.NoError(t, repo.Update(ctx, today))

		// Closed well before the window.
		oldClosedOn := midnight.Add(-48 * time.Hour).UnixMilli()
		oldRow := models.TicketModel{
			UUID:           "22222222-2222-2222-2222-222222222222",
			Number:         "TKT-20250101-0002",
			OrganizationID: 1,
			OpenedBy:       "reception@firm.test",
			ClientFileNo:   "CF-1002",
			MobileNo:       "9876543211",
			ClientName:     "Old Closed",
			IssueType:      string(vo.IssuePayment),
			Description:    "seeded",
			Status:         string(vo.StatusClosed),
			ClosedOn:       &oldClosedOn,
			Version:        1,
			CreatedAt:      oldClosedOn - 3600*1000,
			UpdatedAt:      oldClosedOn,
		}
		require.NoError(t, gdb.Create(&oldRow).Error)

		stillOpen := createTestTicket(t, 1, "Still Open")
		require.NoError(t, repo.Save(ctx, stillOpen))

		count, err := repo.CountClosedSince(ctx, 1, midnight)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestTicketRepository_AverageResolutionHours(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceNumberGenerator(gdb))
	ctx := context.Background()

	t.Run("zero without closed tickets", func(t *testing.T) {
		avg, err := repo.AverageResolutionHours(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, avg)
	})

	t.Run("averages closed tickets only", func(t *testing.T) {
		// Insert rows directly so created_at and closed_on are exactly
		// two hours apart.
		createdAt := time.Now().Add(-3 * time.Hour).UnixMilli()
		closedOn := createdAt + 2*3600*1000

		row := models.TicketModel{
			UUID:           "11111111-1111-1111-1111-111111111111",
			Number:         "TKT-20250101-0001",
			OrganizationID: 1,
			OpenedBy:       "reception@firm.test",
			ClientFileNo:   "CF-1001",
			MobileNo:       "9876543210",
			ClientName:     "Asha Rao",
			IssueType:      string(vo.IssuePayment),
			Description:    "seeded",
			Status:         string(vo.StatusClosed),
			ClosedOn:       &closedOn,
			Version:        1,
			CreatedAt:      createdAt,
			UpdatedAt:      closedOn,
		}
		require.NoError(t, gdb.Create(&row).Error)

		stillOpen := createTestTicket(t, 1, "Still Open")
		require.NoError(t, repo.Save(ctx, stillOpen))

		avg, err := repo.AverageResolutionHours(ctx, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, avg, 0.01)
	})
}
