package handlers

import (
	"net/http"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for the assignment ledger
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// MatchVolunteerRequest names the volunteer and event to pair up
type MatchVolunteerRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" binding:"required"`
	EventID     uuid.UUID `json:"event_id" binding:"required"`
}

// UpdateStatusRequest carries the new assignment status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MatchVolunteer handles POST /match-volunteer
// @Summary Assign a volunteer to an event
// @Description Record an assignment snapshot and notify the volunteer; each (volunteer, event) pair can only be assigned once
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body MatchVolunteerRequest true "Volunteer and event IDs"
// @Success 201 {object} service.AssignmentResponse "Assignment recorded"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Volunteer or event not found"
// @Failure 409 {object} ErrorResponse "Pair already assigned"
// @Router /match-volunteer [post]
func (h *AssignmentHandler) MatchVolunteer(c *gin.Context) {
	var req MatchVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.assignmentService.Assign(req.VolunteerID, req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetHistory handles GET /history/:id
// @Summary Get a volunteer's assignment history
// @Description Get all assignments for a volunteer in insertion order
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {array} service.AssignmentResponse "History, possibly empty"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /history/{id} [get]
func (h *AssignmentHandler) GetHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.assignmentService.History(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// UpdateStatus handles PATCH /history/:id/status
// @Summary Update an assignment's status
// @Description Move an assignment to registered, completed or cancelled
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} service.AssignmentResponse "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /history/{id}/status [patch]
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.assignmentService.UpdateStatus(id, models.AssignmentStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
