package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		elapsed := time.Since(start)
		// Use the route pattern, not the raw path, to keep cardinality low.
		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		prometheus.HTTPRequestTotal.WithLabelValues(
			c.Method(), path, strconv.Itoa(status),
		).Inc()
		prometheus.HTTPRequestLatency.WithLabelValues(
			c.Method(), path,
		).Observe(float64(elapsed.Milliseconds()))

		return err
	}
}
