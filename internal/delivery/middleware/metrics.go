package middleware

import (
	"time"

	"booking/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware counts served requests by route template
type MetricsMiddleware struct {
	metrics metrics.HTTPMetrics
}

// NewMetricsMiddleware creates a new request metrics middleware
func NewMetricsMiddleware(m metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records the request after the inner chain has written the response
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
