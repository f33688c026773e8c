package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

// Middleware records request counts and latency per route pattern. The route
// pattern, not the raw path, keeps the label cardinality bounded.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		prometheus.RequestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Method(), path).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
