package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(listUsersUC usecases.ListUsersExecutor, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUC: listUsersUC,
		logger:      logger,
	}
}

// ListUsers godoc
// @Summary Active members of the current organization
// @Description Backs the assignee dropdown.
// @Tags users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		OrganizationID: c.GetUint("organization_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *UserHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
