package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/infra/prometheus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				// Use the route pattern, not the raw path, to keep cardinality low.
				routePath := c.Route().Path
				prometheus.HTTPPanicTotal.WithLabelValues(routePath).Inc()

				m.logger.WithError(fmt.Errorf("%v", r)).WithFields(logrus.Fields{
					"path":  routePath,
					"stack": string(debug.Stack()),
				}).Error("HTTP server panic recovered")

				// fasthttp reports 200 for an unset status, so a panicking
				// handler always gets overwritten with a 500.
				_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}
		}()

		return c.Next()
	}
}
