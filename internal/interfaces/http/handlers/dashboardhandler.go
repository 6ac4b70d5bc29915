package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type DashboardHandler struct {
	statsUC usecases.GetDashboardStatsExecutor
	logger  logger.Interface
}

func NewDashboardHandler(statsUC usecases.GetDashboardStatsExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Dashboard tile counts and average resolution time
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	query := usecases.GetDashboardStatsQuery{
		OrganizationID: c.GetUint("organization_id"),
	}

	result, err := h.statsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
