package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *usecases.AssignTicketResult
	err    error
	gotCmd usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*usecases.AssignTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *usecases.ChangeTicketStatusResult
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, _ usecases.ChangeTicketStatusCommand) (*usecases.ChangeTicketStatusResult, error) {
	return m.result, m.err
}

type mockSearchTicketsUC struct {
	result   *usecases.SearchTicketsResult
	err      error
	gotQuery usecases.SearchTicketsQuery
}

func (m *mockSearchTicketsUC) Execute(_ context.Context, query usecases.SearchTicketsQuery) (*usecases.SearchTicketsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockUploadAttachmentsUC struct {
	result *usecases.UploadAttachmentsResult
	err    error
}

func (m *mockUploadAttachmentsUC) Execute(_ context.Context, _ usecases.UploadAttachmentsCommand) (*usecases.UploadAttachmentsResult, error) {
	return m.result, m.err
}

type ticketTestDeps struct {
	createUC *mockCreateTicketUC
	getUC    *mockGetTicketUC
	updateUC *mockUpdateTicketUC
	assignUC *mockAssignTicketUC
	statusUC *mockChangeStatusUC
	searchUC *mockSearchTicketsUC
	uploadUC *mockUploadAttachmentsUC
}

func newTestTicketHandler(deps ticketTestDeps) *TicketHandler {
	if deps.createUC == nil {
		deps.createUC = &mockCreateTicketUC{}
	}
	if deps.getUC == nil {
		deps.getUC = &mockGetTicketUC{}
	}
	if deps.updateUC == nil {
		deps.updateUC = &mockUpdateTicketUC{}
	}
	if deps.assignUC == nil {
		deps.assignUC = &mockAssignTicketUC{}
	}
	if deps.statusUC == nil {
		deps.statusUC = &mockChangeStatusUC{}
	}
	if deps.searchUC == nil {
		deps.searchUC = &mockSearchTicketsUC{}
	}
	if deps.uploadUC == nil {
		deps.uploadUC = &mockUploadAttachmentsUC{}
	}
	return NewTicketHandler(
		deps.createUC,
		deps.getUC,
		deps.updateUC,
		deps.assignUC,
		deps.statusUC,
		deps.searchUC,
		deps.uploadUC,
		testutil.NewMockLogger(),
	)
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			UUID:      "tkt-uuid-1",
			Number:    "TKT-20260831-0001",
			Status:    "open",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(ticketTestDeps{createUC: mockUC})

	reqBody := CreateTicketRequest{
		ClientFileNo: "CF-1001",
		MobileNo:     "0501234567",
		ClientName:   "Huda Said",
		IssueType:    "technical",
		Description:  "Portal rejects the uploaded statement",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, 3)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	assert.Equal(t, uint(3), mockUC.gotCmd.OrganizationID)
	assert.Equal(t, "agent@example.com", mockUC.gotCmd.OpenedBy)
	assert.Nil(t, mockUC.gotCmd.AssigneeID)
}

func TestTicketHandler_CreateTicket_WithAssignee(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			UUID:      "tkt-uuid-2",
			Number:    "TKT-20260831-0002",
			Status:    "open",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(ticketTestDeps{createUC: mockUC})

	assigneeID := uint(12)
	reqBody := CreateTicketRequest{
		ClientFileNo: "CF-1002",
		MobileNo:     "0509876543",
		ClientName:   "Huda Said",
		IssueType:    "technical",
		Description:  "Portal rejects the uploaded statement",
		AssigneeID:   &assigneeID,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, 3)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.gotCmd.AssigneeID)
	assert.Equal(t, uint(12), *mockUC.gotCmd.AssigneeID)
	assert.Equal(t, uint(7), mockUC.gotCmd.CreatedBy)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(ticketTestDeps{})

	reqBody := map[string]string{"name_of_client": "only a name"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, 3)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
	handler := newTestTicketHandler(ticketTestDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/missing", nil)
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "missing")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &ticketdto.TicketDTO{
			UUID:   "tkt-uuid-1",
			Number: "TKT-20260831-0001",
			Status: "open",
		},
	}
	handler := newTestTicketHandler(ticketTestDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tkt-uuid-1", nil)
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "tkt-uuid-1")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "TKT-20260831-0001")
}

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	mockUC := &mockAssignTicketUC{
		result: &usecases.AssignTicketResult{
			UUID:       "tkt-uuid-1",
			AssigneeID: 12,
			Status:     "open",
			UpdatedAt:  time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(ticketTestDeps{assignUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/tkt-uuid-1/assign", AssignTicketRequest{AssigneeID: 12})
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "tkt-uuid-1")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), mockUC.gotCmd.AssigneeID)
	assert.Equal(t, uint(7), mockUC.gotCmd.AssignedBy)
}

func TestTicketHandler_AssignTicket_MissingAssignee(t *testing.T) {
	handler := newTestTicketHandler(ticketTestDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/tkt-uuid-1/assign", map[string]string{})
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "tkt-uuid-1")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ChangeTicketStatus_Conflict(t *testing.T) {
	mockUC := &mockChangeStatusUC{err: errors.NewConflictError("ticket is already closed")}
	handler := newTestTicketHandler(ticketTestDeps{statusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/tkt-uuid-1/status",
		ChangeTicketStatusRequest{Status: "closed", Resolution: "resolved remotely"})
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "tkt-uuid-1")

	handler.ChangeTicketStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTicketHandler_ListTickets_ForwardsFilters(t *testing.T) {
	mockUC := &mockSearchTicketsUC{
		result: &usecases.SearchTicketsResult{
			Items:    []ticketdto.TicketListItemDTO{},
			Total:    0,
			Page:     2,
			PageSize: 10,
		},
	}
	handler := newTestTicketHandler(ticketTestDeps{searchUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetQueryParams(c, map[string]string{
		"q":           "huda",
		"status":      "open",
		"assignee_id": "12",
		"page":        "2",
		"page_size":   "10",
	})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.gotQuery.OrganizationID)
	assert.Equal(t, "huda", mockUC.gotQuery.Query)
	assert.Equal(t, "open", mockUC.gotQuery.Status)
	require.NotNil(t, mockUC.gotQuery.AssigneeID)
	assert.Equal(t, uint(12), *mockUC.gotQuery.AssigneeID)
	assert.Equal(t, 2, mockUC.gotQuery.Page)
	assert.Equal(t, 10, mockUC.gotQuery.PageSize)
}

func TestTicketHandler_ListTickets_BadAssigneeID(t *testing.T) {
	handler := newTestTicketHandler(ticketTestDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetQueryParams(c, map[string]string{"assignee_id": "not-a-number"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_UploadAttachments_NoForm(t *testing.T) {
	handler := newTestTicketHandler(ticketTestDeps{})

	// JSON body instead of multipart.
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/tkt-uuid-1/attachments", map[string]string{})
	testutil.SetAuthContext(c, 7, 3)
	testutil.SetURLParam(c, "uuid", "tkt-uuid-1")

	handler.UploadAttachments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
