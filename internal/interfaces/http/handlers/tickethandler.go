package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	ClientFileNo string `json:"client_file_no" binding:"required"`
	MobileNo     string `json:"mobile_no" binding:"required"`
	ClientName   string `json:"name_of_client" binding:"required"`
	IssueType    string `json:"issue_type" binding:"required"`
	Description  string `json:"description" binding:"required"`
	AssigneeID   *uint  `json:"assignee_id"`
}

type UpdateTicketRequest struct {
	ClientFileNo *string `json:"client_file_no"`
	MobileNo     *string `json:"mobile_no"`
	ClientName   *string `json:"name_of_client"`
	IssueType    *string `json:"issue_type"`
	Description  *string `json:"description"`
	Resolution   *string `json:"resolution"`
	AssigneeID   *uint   `json:"assignee_id"`
	Status       *string `json:"status"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeTicketStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Resolution string `json:"resolution"`
}

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	assignTicketUC      usecases.AssignTicketExecutor
	changeStatusUC      usecases.ChangeTicketStatusExecutor
	searchTicketsUC     usecases.SearchTicketsExecutor
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	changeStatusUC usecases.ChangeTicketStatusExecutor,
	searchTicketsUC usecases.SearchTicketsExecutor,
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		updateTicketUC:      updateTicketUC,
		assignTicketUC:      assignTicketUC,
		changeStatusUC:      changeStatusUC,
		searchTicketsUC:     searchTicketsUC,
		uploadAttachmentsUC: uploadAttachmentsUC,
		logger:              logger,
	}
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket details"
// @Success 201 {object} utils.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreateTicketCommand{
		OrganizationID: c.GetUint("organization_id"),
		OpenedBy:       c.GetString("email"),
		CreatedBy:      c.GetUint("user_id"),
		ClientFileNo:   req.ClientFileNo,
		MobileNo:       req.MobileNo,
		ClientName:     req.ClientName,
		IssueType:      req.IssueType,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket godoc
// @Summary Get a ticket by UUID
// @Tags tickets
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{uuid} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	query := usecases.GetTicketQuery{
		UUID:           c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket godoc
// @Summary Update ticket details
// @Tags tickets
// @Accept json
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Param request body UpdateTicketRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{uuid} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.UpdateTicketCommand{
		UUID:           c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
		UpdatedBy:      c.GetUint("user_id"),
		ClientFileNo:   req.ClientFileNo,
		MobileNo:       req.MobileNo,
		ClientName:     req.ClientName,
		IssueType:      req.IssueType,
		Description:    req.Description,
		Resolution:     req.Resolution,
		AssigneeID:     req.AssigneeID,
		Status:         req.Status,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignTicket godoc
// @Summary Assign a ticket to an agent
// @Tags tickets
// @Accept json
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Param request body AssignTicketRequest true "Assignee"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{uuid}/assign [post]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.AssignTicketCommand{
		UUID:           c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
		AssigneeID:     req.AssigneeID,
		AssignedBy:     c.GetUint("user_id"),
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// ChangeTicketStatus godoc
// @Summary Change ticket status
// @Tags tickets
// @Accept json
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Param request body ChangeTicketStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{uuid}/status [patch]
func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.ChangeTicketStatusCommand{
		UUID:           c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
		Status:         req.Status,
		ChangedBy:      c.GetUint("user_id"),
		Resolution:     req.Resolution,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// ListTickets godoc
// @Summary Search and list tickets
// @Tags tickets
// @Produce json
// @Param q query string false "Search over client name, file number, mobile number and ticket number"
// @Param status query string false "Status filter (open, in_progress, closed)"
// @Param assignee_id query int false "Assignee filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.SearchTicketsQuery{
		OrganizationID: c.GetUint("organization_id"),
		Query:          c.Query("q"),
		Status:         c.Query("status"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid assignee_id"))
			return
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.searchTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UploadAttachments godoc
// @Summary Upload ticket attachments
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Param files formData file true "Files to attach"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{uuid}/attachments [post]
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid multipart form"))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("at least one file is required"))
		return
	}

	uploads := make([]usecases.FileUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("failed to read uploaded file"))
			return
		}
		opened = append(opened, f)

		uploads = append(uploads, usecases.FileUpload{
			Name:    fh.Filename,
			Size:    fh.Size,
			MIME:    fh.Header.Get("Content-Type"),
			Content: f,
		})
	}

	cmd := usecases.UploadAttachmentsCommand{
		TicketUUID:     c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
		UploadedBy:     c.GetUint("user_id"),
		Files:          uploads,
	}

	result, err := h.uploadAttachmentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachments processed", result)
}
