package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kitchen-service/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
	// ReplayedHeader marks a response served from the idempotency cache
	ReplayedHeader = "X-Idempotent-Replay"

	clientRequestIDKey = "client_request_id"
)

type requestIDKey struct{}

// RequestIDMiddleware extracts or generates X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			logger.Debug("Generated new request ID",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
		} else {
			c.Set(clientRequestIDKey, true)
		}

		c.Set(RequestIDContextKey, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// idempotencyKey is scoped to the authenticated user when there is one.
func idempotencyKey(c *gin.Context, requestID string) string {
	return cache.IdempotencyPrefix + c.GetString("username") + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + requestID
}

// IdempotencyMiddleware replays the stored 2xx response of a write request
// whose client-supplied X-Request-ID was already processed, and stores the
// response of new ones. Cache failures fail open. Mount it after
// AuthMiddleware so replays are never served to anonymous callers.
func IdempotencyMiddleware(store cache.Cache, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWrite(c.Request.Method) || !c.GetBool(clientRequestIDKey) {
			c.Next()
			return
		}

		requestID := GetRequestID(c)
		key := idempotencyKey(c, requestID)
		ctx := c.Request.Context()

		var cached storedResponse
		err := cache.GetJSON(ctx, store, key, &cached)
		switch {
		case err == nil:
			logger.Info("Duplicate request detected, returning cached response",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.Header(ReplayedHeader, "true")
			c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
			c.Abort()
			return
		case !errors.Is(err, cache.ErrCacheMiss):
			logger.Warn("Error reading idempotency cache", zap.String("request_id", requestID), zap.Error(err))
		}

		writer := &responseWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || len(writer.body) == 0 {
			return
		}
		entry := storedResponse{Status: status, Body: writer.body}
		if err := cache.SetJSON(context.WithoutCancel(ctx), store, key, entry, ttl); err != nil {
			logger.Warn("Failed to store response for idempotency",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			return
		}
		logger.Debug("Stored response for idempotency",
			zap.String("request_id", requestID),
			zap.Int("status", status),
		)
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}
