package handler

import (
	"github.com/gin-gonic/gin"

	"billingdesk/internal/service"
)

// NotificationHandler handles overdue-notice endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// SendReminders handles POST /api/v1/accounts/:partnerId/invoices/reminders
// @Summary Send overdue-invoice notice
// @Description Emails a summary of the partner's open balance and aging buckets. No email is sent when nothing is overdue.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Success 200 {object} APIResponse
// @Failure 502 {object} APIResponse "Email delivery failure"
// @Router /accounts/{partnerId}/invoices/reminders [post]
func (h *NotificationHandler) SendReminders(c *gin.Context) {
	if err := h.notificationService.SendOverdueNotice(c.Request.Context(), c.Param("partnerId")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"sent": true})
}
