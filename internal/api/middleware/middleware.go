package middleware

import (
	"context"
	"strings"
	"time"

	"volunteer-hub-backend/internal/auth"
	"volunteer-hub-backend/internal/config"
	"volunteer-hub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request id is stored
const RequestIDKey = "request_id"

// RequestID assigns a request id to every request, honoring an incoming
// X-Request-ID header when present. The id is stored on both the gin
// context and the request context so downstream loggers can pick it up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		ctx := context.WithValue(c.Request.Context(), logger.ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Identity attaches the caller's volunteer id to the request context when a
// valid bearer token is presented. Requests without one pass through
// anonymously.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			if claims, err := auth.ParseToken(token, secret); err == nil {
				ctx := context.WithValue(c.Request.Context(), logger.ContextKeyVolunteerID, claims.VolunteerID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// Logger logs one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		entry := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request completed")
	}
}

// Recovery converts panics into 500 responses instead of dropped connections
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
					"panic": err,
					"path":  c.Request.URL.Path,
				}).Error("panic recovered")
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// CORS allows cross-origin requests from the configured frontend origins
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
