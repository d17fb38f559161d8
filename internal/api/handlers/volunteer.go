package handlers

import (
	"net/http"
	"strconv"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VolunteerHandler handles HTTP requests for volunteer operations
type VolunteerHandler struct {
	volunteerService service.VolunteerServiceInterface
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerService service.VolunteerServiceInterface) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// Register handles POST /register
// @Summary Register a volunteer
// @Description Create a new volunteer account with email and password
// @Tags volunteers
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.VolunteerResponse "Volunteer created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /register [post]
func (h *VolunteerHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.volunteerService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /login
// @Summary Log in
// @Description Verify credentials and return an access token
// @Tags volunteers
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Authenticated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *VolunteerHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.volunteerService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /profile/:id
// @Summary Get a volunteer profile
// @Description Get a volunteer's profile by ID
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} service.VolunteerResponse "Profile found"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /profile/{id} [get]
func (h *VolunteerHandler) GetProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.volunteerService.GetProfile(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PUT /profile/:id
// @Summary Update a volunteer profile
// @Description Update profile fields; skills and availability are replaced wholesale when provided
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body service.UpdateProfileRequest true "Profile update"
// @Success 200 {object} service.VolunteerResponse "Profile updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Volunteer not found"
// @Router /profile/{id} [put]
func (h *VolunteerHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.volunteerService.UpdateProfile(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListVolunteers handles GET /volunteers
// @Summary List volunteers
// @Description Get all volunteers with pagination support
// @Tags volunteers
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} map[string]interface{} "Successfully retrieved volunteers"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /volunteers [get]
func (h *VolunteerHandler) ListVolunteers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 50
	}

	volunteers, total, err := h.volunteerService.ListVolunteers(pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volunteers": volunteers,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}
