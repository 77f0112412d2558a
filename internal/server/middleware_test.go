package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dalal-market/internal/cache"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	users map[string]models.User
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (models.User, error) {
	user, ok := s.users[token]
	if !ok {
		return models.User{}, fmt.Errorf("service: %w - bad token", marketerrors.ErrUnauthenticated)
	}
	if !user.IsActive {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrUserSuspended)
	}
	return user, nil
}

var testAuth = stubAuthenticator{users: map[string]models.User{
	"buyer-token":     {UserID: "buyer", IsActive: true},
	"staff-token":     {UserID: "admin", IsActive: true, IsStaff: true},
	"suspended-token": {UserID: "gone", IsActive: false},
}}

func whoAmI(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, user.UserID)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, false, resp["success"])
	return resp
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", RequireAuth(testAuth), whoAmI)
	router.GET("/staff", RequireAuth(testAuth), RequireStaff, whoAmI)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedBody   string
		expectedMsg    string
	}{
		{name: "missing_header", path: "/private", expectedStatus: http.StatusUnauthorized, expectedMsg: "authentication required"},
		{name: "wrong_scheme", path: "/private", header: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedMsg: "authentication required"},
		{name: "unknown_token", path: "/private", header: "Bearer nope", expectedStatus: http.StatusUnauthorized, expectedMsg: "authentication required"},
		{name: "suspended_user", path: "/private", header: "Bearer suspended-token", expectedStatus: http.StatusForbidden, expectedMsg: "user account is suspended"},
		{name: "valid_token", path: "/private", header: "Bearer buyer-token", expectedStatus: http.StatusOK, expectedBody: "buyer"},
		{name: "lowercase_scheme", path: "/private", header: "bearer buyer-token", expectedStatus: http.StatusOK, expectedBody: "buyer"},
		{name: "staff_route_as_buyer", path: "/staff", header: "Bearer buyer-token", expectedStatus: http.StatusForbidden, expectedMsg: "action not allowed"},
		{name: "staff_route_as_staff", path: "/staff", header: "Bearer staff-token", expectedStatus: http.StatusOK, expectedBody: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, w.Body.String())
				return
			}
			resp := decodeError(t, w)
			require.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/public", OptionalAuth(testAuth), whoAmI)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "anonymous", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer buyer-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "buyer", w.Body.String())

	// a bad token is an error even where auth is optional
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.NewMemoryIdempotencyStore(time.Hour)

	calls := 0
	failNext := false
	router := gin.New()
	router.POST("/things", Idempotency(store), func(c *gin.Context) {
		calls++
		if failNext {
			failNext = false
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	post := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("replays_first_response", func(t *testing.T) {
		first := post("key-1")
		require.Equal(t, http.StatusCreated, first.Code)
		require.Empty(t, first.Header().Get(ReplayedHeader))

		second := post("key-1")
		require.Equal(t, http.StatusCreated, second.Code)
		require.Equal(t, "true", second.Header().Get(ReplayedHeader))
		require.JSONEq(t, first.Body.String(), second.Body.String())
		require.Equal(t, 1, calls)
	})

	t.Run("new_key_runs_handler", func(t *testing.T) {
		w := post("key-2")
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, 2, calls)
	})

	t.Run("no_key_always_runs", func(t *testing.T) {
		post("")
		post("")
		require.Equal(t, 4, calls)
	})

	t.Run("server_error_is_not_remembered", func(t *testing.T) {
		failNext = true
		w := post("key-3")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		w = post("key-3")
		require.Equal(t, http.StatusCreated, w.Code)
		require.Empty(t, w.Header().Get(ReplayedHeader))
		require.Equal(t, 6, calls)
	})

	t.Run("in_flight_duplicate_conflicts", func(t *testing.T) {
		_, reserved, err := store.Reserve(context.Background(), "anonymous:POST:/things:key-4")
		require.NoError(t, err)
		require.True(t, reserved)

		w := post("key-4")
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, 6, calls)
	})

	t.Run("oversized_key_rejected", func(t *testing.T) {
		w := post(strings.Repeat("k", 256))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
