package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"dalal-market/internal/cache"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func idempotencyScope(c *gin.Context, key string) string {
	caller := "anonymous"
	if user, ok := helpers.CurrentUser(c); ok {
		caller = user.UserID
	}
	return caller + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key
}

// Idempotency replays the first response for a repeated Idempotency-Key.
// Requests without the header pass through untouched; 5xx responses are not remembered.
func Idempotency(store cache.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || store == nil {
			c.Next()
			return
		}
		if len(key) > 255 {
			utils.AbortJSONError(c, http.StatusBadRequest, errors.New("idempotency key longer than 255 characters"), "invalid request payload")
			return
		}

		scoped := idempotencyScope(c, key)
		ctx := c.Request.Context()
		stored, reserved, err := store.Reserve(ctx, scoped)
		if err != nil {
			utils.Warn("idempotency store unavailable, processing without it", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if !reserved {
			if stored.Pending() {
				utils.AbortJSONError(c, http.StatusConflict, errors.New("request with this key is still in progress"), "duplicate request in progress")
				return
			}
			c.Header(ReplayedHeader, "true")
			c.Data(stored.Status, stored.ContentType, stored.Body)
			c.Abort()
			utils.Info("idempotent response replayed", map[string]any{"path": c.Request.URL.Path, "status": stored.Status})
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		// the client may be gone; the outcome still has to be recorded
		saveCtx := context.WithoutCancel(ctx)
		status := writer.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(saveCtx, scoped); err != nil {
				utils.Warn("failed to release idempotency key", map[string]any{"error": err.Error()})
			}
			return
		}
		resp := cache.StoredResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := store.Complete(saveCtx, scoped, resp); err != nil {
			utils.Warn("failed to store idempotent response", map[string]any{"error": err.Error()})
		}
	}
}
