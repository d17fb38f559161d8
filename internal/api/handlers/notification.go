package handlers

import (
	"net/http"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Send handles POST /notifications
// @Summary Send a notification
// @Description Store a directed notification for a volunteer
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.SendNotificationRequest true "Notification data"
// @Success 201 {object} service.NotificationResponse "Notification stored"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req service.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.notificationService.Send(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListForVolunteer handles GET /notifications/:id
// @Summary List a volunteer's notifications
// @Description Get all notifications for a volunteer, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {array} service.NotificationResponse "Notifications, possibly empty"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /notifications/{id} [get]
func (h *NotificationHandler) ListForVolunteer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForVolunteer(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PATCH /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string "Marked as read"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// Dismiss handles DELETE /notifications/:id
// @Summary Dismiss a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string "Notification dismissed"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.Dismiss(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification dismissed"})
}
