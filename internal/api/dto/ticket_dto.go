package dto

import (
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

// SubmitTicketRequest payload.
type SubmitTicketRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SetTicketStatusRequest payload.
type SetTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN PROCESSING CLOSED"`
}

// TicketResponse describes one support ticket.
type TicketResponse struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name"`
	Subject    string              `json:"subject"`
	Message    string              `json:"message"`
	Status     domain.TicketStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		ClientID:   ticket.ClientID,
		ClientName: ticket.ClientName,
		Subject:    ticket.Subject,
		Message:    ticket.Message,
		Status:     ticket.Status,
		CreatedAt:  ticket.CreatedAt,
	}
}
