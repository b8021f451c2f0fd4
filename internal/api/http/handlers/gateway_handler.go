package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// GatewayHandler serves the generative-text passthrough.
type GatewayHandler struct {
	gateway *service.GatewayService
}

// NewGatewayHandler constructs handler.
func NewGatewayHandler(gateway *service.GatewayService) *GatewayHandler {
	return &GatewayHandler{gateway: gateway}
}

// Generate POST /client/feature/ai-gateway/generate.
func (h *GatewayHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	text, err := h.gateway.Generate(c.Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.GenerateResponse{Text: text}})
}
