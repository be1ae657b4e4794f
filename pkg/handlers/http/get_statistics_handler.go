package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const (
	defaultStatisticsDays = 30
	maxStatisticsDays     = 365
)

type getStatisticsHandler struct {
	logger     *logrus.Logger
	repository trust.Repository
}

func NewGetStatisticsHandler(logger *logrus.Logger, repository trust.Repository) Handler {
	return &getStatisticsHandler{
		logger:     logger,
		repository: repository,
	}
}

// Handle @Summary Verification statistics
// @Description Aggregates verification outcomes over a time window
// @Tags Certificates
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} trust.Statistics "Statistics"
// @Router /api/v1/statistics [get]
func (h *getStatisticsHandler) Handle(c *fiber.Ctx) error {
	days := c.QueryInt("days", defaultStatisticsDays)
	if days <= 0 {
		days = defaultStatisticsDays
	}
	if days > maxStatisticsDays {
		days = maxStatisticsDays
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	statistics, err := h.repository.Statistics(c.Context(), since)
	if err != nil {
		h.logger.WithError(err).Error("failed to compute statistics")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute statistics"})
	}

	return c.Status(fiber.StatusOK).JSON(statistics)
}
