package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/infra/cache"
)

type getCertificateHandler struct {
	logger     *logrus.Logger
	repository trust.Repository
	cache      *cache.CertificateCache
}

func NewGetCertificateHandler(
	logger *logrus.Logger,
	repository trust.Repository,
	certificateCache *cache.CertificateCache,
) Handler {
	return &getCertificateHandler{
		logger:     logger,
		repository: repository,
		cache:      certificateCache,
	}
}

// Handle @Summary Retrieve a certificate by ID
// @Description Returns a previously issued trust certificate
// @Tags Certificates
// @Produce json
// @Param certificate_id path string true "Certificate ID"
// @Success 200 {object} trust.TrustCertificate "Certificate"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Router /api/v1/certificates/{certificate_id} [get]
func (h *getCertificateHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("certificate_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid certificate_id"})
	}

	if h.cache != nil {
		certificate, err := h.cache.Get(c.Context(), id)
		if err != nil {
			h.logger.WithError(err).Debug("certificate cache lookup failed")
		}
		if certificate != nil {
			return c.Status(fiber.StatusOK).JSON(certificate)
		}
	}

	certificate, err := h.repository.Get(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("certificate_id", id).Error("failed to load certificate")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load certificate"})
	}
	if certificate == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "certificate not found"})
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Context(), certificate); err != nil {
			h.logger.WithError(err).Debug("failed to backfill certificate cache")
		}
	}

	return c.Status(fiber.StatusOK).JSON(certificate)
}
