package middleware

import (
	"strconv"
	"time"

	"instruCal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// RequestMetrics records per-route latency and request counts.
// It labels by the route pattern (e.g. /api/v1/bookings/:id), not the
// raw URL, to keep label cardinality bounded.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := c.Response().Status

			metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

			return err
		}
	}
}
