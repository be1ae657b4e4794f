package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/app/verification"
	"github.com/VeritasAI/TrustScope/pkg/handlers/http/request"
)

type verifyHandler struct {
	logger  *logrus.Logger
	service verification.VerifyResponse
}

func NewVerifyHandler(logger *logrus.Logger, service verification.VerifyResponse) Handler {
	return &verifyHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Verify an AI response
// @Description Runs the detector pipeline and returns a trust certificate
// @Tags Verifications
// @Accept json
// @Produce json
// @Param request body request.VerifyRequest true "Texts to verify"
// @Success 200 {object} trust.TrustCertificate "Certificate"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/verifications [post]
func (h *verifyHandler) Handle(c *fiber.Ctx) error {
	var req request.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	certificate, err := h.service.Verify(c.Context(), req.InputText, req.ResponseText)
	if err != nil {
		h.logger.WithError(err).Error("verification failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "verification failed"})
	}

	return c.Status(fiber.StatusOK).JSON(certificate)
}
