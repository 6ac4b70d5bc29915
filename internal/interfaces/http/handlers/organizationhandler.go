package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/organization/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type OrganizationHandler struct {
	getOrgUC usecases.GetOrganizationExecutor
	logger   logger.Interface
}

func NewOrganizationHandler(getOrgUC usecases.GetOrganizationExecutor, logger logger.Interface) *OrganizationHandler {
	return &OrganizationHandler{
		getOrgUC: getOrgUC,
		logger:   logger,
	}
}

// GetBranding godoc
// @Summary Public branding for an organization
// @Description Serves the name, theme colors and logo for the login page. No authentication required.
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} utils.APIResponse
// @Router /organizations/{slug}/branding [get]
func (h *OrganizationHandler) GetBranding(c *gin.Context) {
	result, err := h.getOrgUC.Execute(c.Request.Context(), usecases.GetOrganizationQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
