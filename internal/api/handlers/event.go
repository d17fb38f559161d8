package handlers

import (
	"net/http"
	"strconv"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for event operations
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Description Create a community-service event and notify all registered volunteers
// @Tags events
// @Accept json
// @Produce json
// @Param request body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Event created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.eventService.CreateEvent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListEvents handles GET /events
// @Summary List events
// @Description Get all events with pagination support, newest first
// @Tags events
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} map[string]interface{} "Successfully retrieved events"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 50
	}

	events, total, err := h.eventService.ListEvents(pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":    events,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Description Get an event by ID
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse "Event found"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.eventService.GetEventByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Delete an event; existing assignment snapshots are unaffected
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string "Event deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
