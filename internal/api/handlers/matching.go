package handlers

import (
	"net/http"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchingHandler handles HTTP requests for volunteer-event matching
type MatchingHandler struct {
	matchingService service.MatchingServiceInterface
}

// NewMatchingHandler creates a new matching handler
func NewMatchingHandler(matchingService service.MatchingServiceInterface) *MatchingHandler {
	return &MatchingHandler{
		matchingService: matchingService,
	}
}

// GetMatchingEvents handles GET /matching-events/:id
// @Summary Find matching events for a volunteer
// @Description Get events whose required skills intersect the volunteer's skills and whose dates overlap their availability
// @Tags matching
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {array} service.EventResponse "Matching events, possibly empty"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /matching-events/{id} [get]
func (h *MatchingHandler) GetMatchingEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.matchingService.FindMatchingEvents(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
