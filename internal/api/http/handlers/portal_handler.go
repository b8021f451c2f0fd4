package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/registry"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// PortalHandler serves the client-facing surfaces: dashboard, account,
// payment methods, ticket submission and the placeholder feature pages.
type PortalHandler struct {
	clients  *service.ClientService
	tickets  *service.TicketService
	registry *registry.Registry
}

// NewPortalHandler constructs handler.
func NewPortalHandler(clients *service.ClientService, tickets *service.TicketService, reg *registry.Registry) *PortalHandler {
	return &PortalHandler{clients: clients, tickets: tickets, registry: reg}
}

// Dashboard GET /client/dashboard.
func (h *PortalHandler) Dashboard(c *fiber.Ctx) error {
	account, err := h.currentAccount(c)
	if err != nil {
		return err
	}

	features := make([]dto.FeatureResponse, 0)
	for _, f := range h.registry.Features() {
		features = append(features, dto.NewFeatureResponse(f, account))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"account":  dto.NewClientResponse(account),
		"features": features,
	}})
}

// Account GET /client/account.
func (h *PortalHandler) Account(c *fiber.Ctx) error {
	account, err := h.currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(account)})
}

// Payment GET /client/payment. Display-only; no processing happens here.
func (h *PortalHandler) Payment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"methods": []dto.PaymentMethodResponse{
			{Key: "egyptian_wallet", Name: "Egyptian Wallet"},
			{Key: "visa", Name: "Visa"},
			{Key: "usdt_binance", Name: "USDT (Binance)"},
		},
	}})
}

// SubmitTicket POST /client/tickets.
func (h *PortalHandler) SubmitTicket(c *fiber.Ctx) error {
	clientID, err := currentClientID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	ticket, err := h.tickets.Submit(c.Context(), clientID, req.Subject, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// FeaturePage GET on a feature route. The entitlement middleware has
// already let the request through, so the page renders the feature's
// metadata; surfaces without real logic stay presentation-only.
func (h *PortalHandler) FeaturePage(c *fiber.Ctx) error {
	feature, ok := h.registry.ByRoute(c.Path())
	if !ok {
		return apperrors.NewNotFound("feature", map[string]any{"route": c.Path()})
	}
	account, err := h.currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeatureResponse(feature, account)})
}

func (h *PortalHandler) currentAccount(c *fiber.Ctx) (*domain.ClientAccount, error) {
	clientID, err := currentClientID(c)
	if err != nil {
		return nil, err
	}
	return h.clients.Get(c.Context(), clientID)
}
