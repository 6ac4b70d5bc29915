package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	unreadCountUC usecases.GetUnreadCountExecutor
	acknowledgeUC usecases.AcknowledgeNotificationExecutor
	markAllReadUC usecases.MarkAllReadExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	unreadCountUC usecases.GetUnreadCountExecutor,
	acknowledgeUC usecases.AcknowledgeNotificationExecutor,
	markAllReadUC usecases.MarkAllReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		unreadCountUC: unreadCountUC,
		acknowledgeUC: acknowledgeUC,
		markAllReadUC: markAllReadUC,
		logger:        logger,
	}
}

// ListNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	query := usecases.ListNotificationsQuery{
		OrganizationID: c.GetUint("organization_id"),
		RecipientID:    c.GetUint("user_id"),
		UnreadOnly:     c.Query("unread_only") == "true",
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetUnreadCount godoc
// @Summary Unread notification count for the bell badge
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	query := usecases.GetUnreadCountQuery{
		OrganizationID: c.GetUint("organization_id"),
		RecipientID:    c.GetUint("user_id"),
	}

	count, err := h.unreadCountUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread": count})
}

// AcknowledgeNotification godoc
// @Summary Acknowledge a notification
// @Description Marks the notification read and moves a still-open ticket to in_progress.
// @Tags notifications
// @Produce json
// @Param uuid path string true "Notification UUID"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/{uuid}/acknowledge [post]
func (h *NotificationHandler) AcknowledgeNotification(c *gin.Context) {
	cmd := usecases.AcknowledgeNotificationCommand{
		UUID:           c.Param("uuid"),
		OrganizationID: c.GetUint("organization_id"),
		RecipientID:    c.GetUint("user_id"),
	}

	result, err := h.acknowledgeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification acknowledged", gin.H{
		"ticket_uuid":   result.TicketUUID,
		"ticket_status": result.TicketStatus,
	})
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	cmd := usecases.MarkAllReadCommand{
		OrganizationID: c.GetUint("organization_id"),
		RecipientID:    c.GetUint("user_id"),
	}

	if err := h.markAllReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked read", nil)
}
