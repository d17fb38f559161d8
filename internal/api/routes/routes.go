package routes

import (
	"volunteer-hub-backend/internal/api/handlers"
	"volunteer-hub-backend/internal/api/middleware"
	"volunteer-hub-backend/internal/config"
	"volunteer-hub-backend/internal/repository"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Identity(cfg.JWTSecret))
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	volunteerRepo := repository.NewVolunteerRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	volunteerService := service.NewVolunteerService(volunteerRepo, validator, cfg.JWTSecret)
	eventService := service.NewEventService(eventRepo, volunteerRepo, notificationRepo, validator)
	matchingService := service.NewMatchingService(volunteerRepo, eventRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, volunteerRepo, eventRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo, volunteerRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	eventHandler := handlers.NewEventHandler(eventService)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get a per-IP rate limit
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	router.POST("/register", authLimiter.Limit(), volunteerHandler.Register)
	router.POST("/login", authLimiter.Limit(), volunteerHandler.Login)

	// Volunteer routes
	router.GET("/profile/:id", volunteerHandler.GetProfile)
	router.PUT("/profile/:id", volunteerHandler.UpdateProfile)
	router.GET("/volunteers", volunteerHandler.ListVolunteers)

	// Event routes
	router.POST("/events", eventHandler.CreateEvent)
	router.GET("/events", eventHandler.ListEvents)
	router.GET("/events/:id", eventHandler.GetEvent)
	router.DELETE("/events/:id", eventHandler.DeleteEvent)

	// Matching and assignment routes
	router.GET("/matching-events/:id", matchingHandler.GetMatchingEvents)
	router.POST("/match-volunteer", assignmentHandler.MatchVolunteer)
	router.GET("/history/:id", assignmentHandler.GetHistory)
	router.PATCH("/history/:id/status", assignmentHandler.UpdateStatus)

	// Notification routes
	router.POST("/notifications", notificationHandler.Send)
	router.GET("/notifications/:id", notificationHandler.ListForVolunteer)
	router.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	router.DELETE("/notifications/:id", notificationHandler.Dismiss)

	return router
}
