package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/app/verification"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/handlers/http/request"
	"github.com/VeritasAI/TrustScope/pkg/infra/providers"
)

type chatResponse struct {
	Response    string                  `json:"response,omitempty"`
	Certificate *trust.TrustCertificate `json:"certificate"`
}

type chatHandler struct {
	logger    *logrus.Logger
	generator providers.Generator
	service   verification.VerifyResponse
}

func NewChatHandler(
	logger *logrus.Logger,
	generator providers.Generator,
	service verification.VerifyResponse,
) Handler {
	return &chatHandler{
		logger:    logger,
		generator: generator,
		service:   service,
	}
}

// Handle @Summary Generate and verify a chat response
// @Description Generates a model response and verifies it before delivery
// @Tags Verifications
// @Accept json
// @Produce json
// @Param request body request.ChatRequest true "User message"
// @Success 200 {object} chatResponse "Verified response"
// @Failure 502 {object} map[string]interface{} "Generation failed"
// @Router /api/v1/chat [post]
func (h *chatHandler) Handle(c *fiber.Ctx) error {
	var req request.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	generated, err := h.generator.Generate(c.Context(), req.Message)
	if err != nil {
		h.logger.WithError(err).Error("response generation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "response generation failed"})
	}

	certificate, err := h.service.Verify(c.Context(), req.Message, generated)
	if err != nil {
		h.logger.WithError(err).Error("verification failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "verification failed"})
	}

	out := chatResponse{Certificate: certificate}
	// A blocked response never reaches the user, only its certificate does.
	if certificate.Decision != trust.DecisionBlock {
		out.Response = generated
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
