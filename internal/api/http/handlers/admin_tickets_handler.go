package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// AdminTicketsHandler serves the support ticket section.
type AdminTicketsHandler struct {
	tickets *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(tickets *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{tickets: tickets}
}

// List GET /admin/tickets.
func (h *AdminTicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// SetStatus PUT /admin/tickets/:id/status.
func (h *AdminTicketsHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.SetTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	ticket, err := h.tickets.SetStatus(c.Context(), c.Params("id"), domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}
