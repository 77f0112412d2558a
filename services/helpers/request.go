package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dalal-market/internal/models"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const currentUserKey = "current_user"

// SetCurrentUser stores the authenticated user on the request context
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user, if any
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// RequireUser returns the authenticated user or writes a 401 and reports false
func RequireUser(c *gin.Context, handlerName string) (models.User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing authenticated user"), "authentication required")
		utils.Warn(handlerName+": no authenticated user", map[string]any{"path": c.Request.URL.Path})
		return models.User{}, false
	}
	return user, true
}

// QueryDecimal parses an optional decimal query parameter
func QueryDecimal(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return &d, nil
}

// QueryInt parses an optional integer query parameter, returning fallback when absent
func QueryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return n, nil
}
