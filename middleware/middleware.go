// File: /middleware/middleware.go
package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cars-api/errs"
	"cars-api/utils"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// MaxBodyBytes caps request bodies read by JSONBody.
	MaxBodyBytes = 1 << 20
)

var errInvalidJSON = errors.New("request body is not valid JSON")

// ErrorHandler is the terminal error stage. It turns errors attached with
// c.Error into a {"message": ...} response and never re-raises them.
func ErrorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		e, ok := errs.As(err)
		if !ok {
			e = errs.Internal(err)
		}

		event := logger.Error()
		if e.Kind == errs.KindMalformedBody {
			event = logger.Warn()
		}
		event.Err(e.Err).
			Str(requestIDKey, c.GetString(requestIDKey)).
			Str("kind", e.Kind.String()).
			Msg("request error")

		message := e.Message
		if message == "" {
			message = http.StatusText(http.StatusInternalServerError)
		}
		utils.AbortWithError(c, e.Status(), message)
	}
}

// Recovery converts panics into a 500 response.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str(requestIDKey, c.GetString(requestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		utils.AbortWithError(c, http.StatusInternalServerError, "Internal Server Error")
	})
}

// JSONBody rejects request bodies that are not well-formed JSON before any
// handler sees them. Empty bodies pass through.
func JSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method == http.MethodGet ||
			c.Request.Method == http.MethodDelete || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
		_ = c.Request.Body.Close()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.AbortWithError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		if err != nil {
			_ = c.Error(errs.MalformedBody(err))
			c.Abort()
			return
		}

		if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
			_ = c.Error(errs.MalformedBody(errInvalidJSON))
			c.Abort()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

// RequestLogger assigns a request id and logs one line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		event.
			Str(requestIDKey, requestID).
			Str("client_ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_agent", c.Request.UserAgent()).
			Msg("request")
	}
}

// SecurityHeaders adds headers suitable for a JSON-only API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
