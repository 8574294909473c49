package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cars-api/errs"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandlerMapsMalformedBody(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zerolog.Nop()))
	r.Use(JSONBody())
	called := false
	r.POST("/cars", func(c *gin.Context) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader(`{"brand":`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Malformed JSON"}`, w.Body.String())
}

func TestJSONBodyRestoresBody(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zerolog.Nop()))
	r.Use(JSONBody())
	var got []byte
	r.PUT("/cars/:id", func(c *gin.Context) {
		got, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPut, "/cars/1", strings.NewReader(`{"model":"X7"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, `{"model":"X7"}`, string(got))
}

func TestJSONBodyAllowsEmptyBody(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zerolog.Nop()))
	r.Use(JSONBody())
	r.POST("/cars", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader("  ")))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestJSONBodyRejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zerolog.Nop()))
	r.Use(JSONBody())
	called := false
	r.POST("/cars", func(c *gin.Context) { called = true })

	body := `{"brand":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cars", strings.NewReader(body)))

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"message":"Request body too large"}`, w.Body.String())
}

func TestErrorHandlerUsesDeclaredStatus(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zerolog.Nop()))
	r.GET("/not-found", func(c *gin.Context) { _ = c.Error(errs.NotFound("Car not found")) })
	r.GET("/foreign", func(c *gin.Context) { _ = c.Error(errors.New("secret dsn in here")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/not-found", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Car not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foreign", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestRecoveryReturns500(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestRequestLoggerPropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/cars?brand=BMW", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"path":"/cars?brand=BMW"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(60, 2)))
	r.GET("/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"success":false,"message":"Too many requests"}`, w.Body.String())
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(60, 5)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.GetLimiter("10.0.0.1")
	rl.GetLimiter("10.0.0.2")
	require.Equal(t, 2, rl.Size())

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.GetLimiter("10.0.0.3")

	assert.Equal(t, 1, rl.Size())
}
