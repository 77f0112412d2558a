package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dalal-market/internal/metrics"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer token to an active user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if user, ok := helpers.CurrentUser(c); ok {
		fields["user_id"] = user.UserID
	}
	utils.Info("HTTP Request", fields)
}

// MetricsMiddleware records request count and latency per matched route
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", true
	}
	return strings.TrimSpace(token), true
}

func authenticate(c *gin.Context, auth Authenticator, required bool) {
	token, present := bearerToken(c)
	if !present {
		if required {
			utils.AbortJSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "authentication required")
			return
		}
		c.Next()
		return
	}
	if token == "" {
		utils.AbortJSONError(c, http.StatusUnauthorized, errors.New("malformed Authorization header"), "authentication required")
		return
	}

	user, err := auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.AbortJSONError(c, status, err, message)
		utils.Warn("authentication failed", map[string]any{
			"path":   c.Request.URL.Path,
			"status": status,
			"error":  err.Error(),
		})
		return
	}
	helpers.SetCurrentUser(c, user)
	c.Next()
}

// RequireAuth rejects requests without a valid bearer token for an active user
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, auth, true)
	}
}

// OptionalAuth identifies the caller when a token is sent but lets anonymous requests through
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, auth, false)
	}
}

// RequireStaff must run after RequireAuth
func RequireStaff(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.AbortJSONError(c, http.StatusUnauthorized, errors.New("missing authenticated user"), "authentication required")
		return
	}
	if !user.IsStaff {
		utils.AbortJSONError(c, http.StatusForbidden, errors.New("staff only"), "action not allowed")
		utils.Warn("staff route refused", map[string]any{"user_id": user.UserID, "path": c.Request.URL.Path})
		return
	}
	c.Next()
}
