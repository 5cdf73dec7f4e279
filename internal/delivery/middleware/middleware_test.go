package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedRequest struct {
	method string
	route  string
	status int
}

type recordingHTTPMetrics struct {
	mu       sync.Mutex
	requests []observedRequest
}

func (m *recordingHTTPMetrics) ObserveRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, observedRequest{method: method, route: route, status: status})
}

func newEcho(logger *slog.Logger, debug bool, rec *recordingHTTPMetrics) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewMetricsMiddleware(rec).Handle)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("propagates caller request ID", func(t *testing.T) {
		e := newEcho(logger, false, &recordingHTTPMetrics{})
		e.GET("/ping", func(c echo.Context) error {
			assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates ID when missing or oversized", func(t *testing.T) {
		e := newEcho(logger, false, &recordingHTTPMetrics{})
		e.GET("/ping", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		for _, header := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Len(t, got, 36)
			assert.NotEqual(t, header, got)
		}
	})
}

func TestLoggerMiddleware_RendersErrorBeforeLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	metrics := &recordingHTTPMetrics{}

	e := newEcho(logger, false, metrics)
	e.GET("/phones/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/phones/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"route":"/phones/:id"`)
	assert.Contains(t, buf.String(), `"request_id"`)

	require.Len(t, metrics.requests, 1)
	assert.Equal(t, observedRequest{method: http.MethodGet, route: "/phones/:id", status: http.StatusNotFound}, metrics.requests[0])
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var buf bytes.Buffer
		e := newEcho(slog.New(slog.NewJSONHandler(&buf, nil)), debug, &recordingHTTPMetrics{})
		e.GET("/ok", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, debug, strings.Contains(buf.String(), "HTTP Request"))
	}
}
