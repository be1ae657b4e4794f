package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type listCertificatesHandler struct {
	logger     *logrus.Logger
	repository trust.Repository
}

func NewListCertificatesHandler(logger *logrus.Logger, repository trust.Repository) Handler {
	return &listCertificatesHandler{
		logger:     logger,
		repository: repository,
	}
}

// Handle @Summary List recent certificates
// @Description Returns the most recently issued certificates
// @Tags Certificates
// @Produce json
// @Param limit query int false "Maximum certificates to return (default 10, max 100)"
// @Success 200 {array} trust.TrustCertificate "Certificates"
// @Router /api/v1/certificates [get]
func (h *listCertificatesHandler) Handle(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	certificates, err := h.repository.ListRecent(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list certificates")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list certificates"})
	}

	return c.Status(fiber.StatusOK).JSON(certificates)
}
