package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgUsecases "helpdesk/internal/application/organization/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/errors"
)

type mockLoginUC struct {
	result *userUsecases.LoginResult
	err    error
	gotCmd userUsecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd userUsecases.LoginCommand) (*userUsecases.LoginResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockSelectOrgUC struct {
	result *userUsecases.SelectOrganizationResult
	err    error
	gotCmd userUsecases.SelectOrganizationCommand
}

func (m *mockSelectOrgUC) Execute(_ context.Context, cmd userUsecases.SelectOrganizationCommand) (*userUsecases.SelectOrganizationResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListOrgsUC struct {
	result []orgUsecases.OrganizationDTO
	err    error
}

func (m *mockListOrgsUC) Execute(_ context.Context, _ orgUsecases.ListUserOrganizationsQuery) ([]orgUsecases.OrganizationDTO, error) {
	return m.result, m.err
}

func newTestAuthHandler(loginUC *mockLoginUC, selectUC *mockSelectOrgUC, listUC *mockListOrgsUC) *AuthHandler {
	if loginUC == nil {
		loginUC = &mockLoginUC{}
	}
	if selectUC == nil {
		selectUC = &mockSelectOrgUC{}
	}
	if listUC == nil {
		listUC = &mockListOrgsUC{}
	}
	return NewAuthHandler(loginUC, selectUC, listUC, testutil.NewMockLogger())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &userUsecases.LoginResult{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(12 * time.Hour),
			User:      userUsecases.UserDTO{UUID: "user-uuid", Name: "Amir Saleh", Email: "amir@example.com"},
		},
	}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "amir@example.com", Password: "secret123"})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "signed-token")
	assert.Equal(t, "amir@example.com", mockUC.gotCmd.Email)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "amir@example.com", Password: "wrong"})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_Login_BindError(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"email": "amir@example.com"})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ListMyOrganizations_Success(t *testing.T) {
	mockUC := &mockListOrgsUC{
		result: []orgUsecases.OrganizationDTO{
			{UUID: "org-1", Name: "Acme Support", Slug: "acme", Role: "admin"},
			{UUID: "org-2", Name: "Globex Desk", Slug: "globex", Role: "agent"},
		},
	}
	handler := newTestAuthHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/organizations", nil)
	testutil.SetTenantlessAuthContext(c, 7)

	handler.ListMyOrganizations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "acme")
	assert.Contains(t, string(resp.Data), "globex")
}

func TestAuthHandler_SelectOrganization_Success(t *testing.T) {
	mockUC := &mockSelectOrgUC{
		result: &userUsecases.SelectOrganizationResult{
			Token:     "org-scoped-token",
			ExpiresAt: time.Now().Add(12 * time.Hour),
			Role:      "agent",
			OrgUUID:   "org-1",
			OrgName:   "Acme Support",
			OrgSlug:   "acme",
		},
	}
	handler := newTestAuthHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/select-organization",
		SelectOrganizationRequest{Slug: "acme"})
	testutil.SetTenantlessAuthContext(c, 7)

	handler.SelectOrganization(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.UserID)
	assert.Equal(t, "acme", mockUC.gotCmd.OrganizationSlug)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "org-scoped-token")
	assert.Contains(t, string(resp.Data), "agent")
}

func TestAuthHandler_SelectOrganization_NotAMember(t *testing.T) {
	// Membership misses come back as forbidden, not as a slug oracle.
	mockUC := &mockSelectOrgUC{err: errors.NewForbiddenError("not a member of this organization")}
	handler := newTestAuthHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/select-organization",
		SelectOrganizationRequest{Slug: "acme"})
	testutil.SetTenantlessAuthContext(c, 7)

	handler.SelectOrganization(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
