package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// AdminClientsHandler serves the client management section.
type AdminClientsHandler struct {
	clients *service.ClientService
}

// NewAdminClientsHandler constructs handler.
func NewAdminClientsHandler(clients *service.ClientService) *AdminClientsHandler {
	return &AdminClientsHandler{clients: clients}
}

// Dashboard GET /admin/dashboard.
func (h *AdminClientsHandler) Dashboard(c *fiber.Ctx) error {
	accounts, err := h.clients.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"section":      "dashboard",
		"client_count": len(accounts),
	}})
}

// List GET /admin/clients.
func (h *AdminClientsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.clients.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, dto.NewClientResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ToggleFeature POST /admin/clients/:id/features/toggle.
func (h *AdminClientsHandler) ToggleFeature(c *fiber.Ctx) error {
	var req dto.ToggleFeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	account, enabled, err := h.clients.ToggleFeature(c.Context(), c.Params("id"), domain.FeatureKey(req.Feature))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToggleFeatureResponse{
		Client:  dto.NewClientResponse(account),
		Enabled: enabled,
	}})
}

// SetSubscription PUT /admin/clients/:id/subscription.
func (h *AdminClientsHandler) SetSubscription(c *fiber.Ctx) error {
	var req dto.SetSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	end, err := time.Parse("2006-01-02", req.SubscriptionEnd)
	if err != nil {
		return apperrors.NewValidationError("subscription_end must be a calendar date", nil)
	}

	account, err := h.clients.SetSubscriptionEnd(c.Context(), c.Params("id"), end)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(account)})
}

// AdjustPoints POST /admin/clients/:id/points.
func (h *AdminClientsHandler) AdjustPoints(c *fiber.Ctx) error {
	var req dto.AdjustPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	account, err := h.clients.AdjustPoints(c.Context(), c.Params("id"), req.Delta)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(account)})
}
