package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orgUsecases "helpdesk/internal/application/organization/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SelectOrganizationRequest struct {
	Slug string `json:"slug" binding:"required"`
}

type AuthHandler struct {
	loginUC     userUsecases.LoginExecutor
	selectOrgUC userUsecases.SelectOrganizationExecutor
	listOrgsUC  orgUsecases.ListUserOrganizationsExecutor
	logger      logger.Interface
}

func NewAuthHandler(
	loginUC userUsecases.LoginExecutor,
	selectOrgUC userUsecases.SelectOrganizationExecutor,
	listOrgsUC orgUsecases.ListUserOrganizationsExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:     loginUC,
		selectOrgUC: selectOrgUC,
		listOrgsUC:  listOrgsUC,
		logger:      logger,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Issues a tenantless token; exchange it for an organization-scoped one via select-organization.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userUsecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       result.User,
	})
}

// ListMyOrganizations godoc
// @Summary List organizations the caller belongs to
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/organizations [get]
func (h *AuthHandler) ListMyOrganizations(c *gin.Context) {
	result, err := h.listOrgsUC.Execute(c.Request.Context(), orgUsecases.ListUserOrganizationsQuery{
		UserID: c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SelectOrganization godoc
// @Summary Select the working organization
// @Description Verifies membership and issues an organization-scoped token carrying the caller's role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SelectOrganizationRequest true "Organization slug"
// @Success 200 {object} utils.APIResponse
// @Router /auth/select-organization [post]
func (h *AuthHandler) SelectOrganization(c *gin.Context) {
	var req SelectOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.selectOrgUC.Execute(c.Request.Context(), userUsecases.SelectOrganizationCommand{
		UserID:           c.GetUint("user_id"),
		OrganizationSlug: req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"role":       result.Role,
		"organization": gin.H{
			"uuid": result.OrgUUID,
			"name": result.OrgName,
			"slug": result.OrgSlug,
		},
	})
}
