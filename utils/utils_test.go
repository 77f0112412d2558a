package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	require.True(t, IsValidID(id))
	require.NotEqual(t, id, GenerateID())
	require.False(t, IsValidID("item1"))
}

func TestJSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		write       func(c *gin.Context)
		wantStatus  int
		wantSuccess bool
		wantKey     string
	}{
		{
			name:        "success",
			write:       func(c *gin.Context) { JSONResponse(c, http.StatusCreated, gin.H{"id": "1"}, "created") },
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
			wantKey:     "data",
		},
		{
			name:        "error",
			write:       func(c *gin.Context) { JSONError(c, http.StatusBadRequest, errors.New("boom"), "bad") },
			wantStatus:  http.StatusBadRequest,
			wantSuccess: false,
			wantKey:     "error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.write(c)

			require.Equal(t, tc.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.wantSuccess, body["success"])
			require.Contains(t, body, tc.wantKey)
		})
	}
}
