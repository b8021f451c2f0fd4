package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// TicketService coordinates the support ticket lifecycle: clients submit,
// administrators change status.
type TicketService struct {
	tickets    repository.TicketRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger) *TicketService {
	return &TicketService{tickets: tickets, clients: clients, dispatcher: dispatcher, logger: logger}
}

// Submit files a new ticket for the client. Tickets always start OPEN.
func (s *TicketService) Submit(ctx context.Context, clientID, subject, message string) (*domain.SupportTicket, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, apperrors.NewValidationError("subject and message are required", nil)
	}

	account, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": clientID})
		}
		return nil, err
	}

	ticket := &domain.SupportTicket{
		ID:         uuid.NewString(),
		ClientID:   account.ID,
		ClientName: account.Name,
		Subject:    subject,
		Message:    message,
		Status:     domain.TicketStatusOpen,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketSubmitted, account.ID, events.TicketSubmittedPayload{
		TicketID: ticket.ID,
		Subject:  ticket.Subject,
	})
	return ticket, nil
}

// List returns every ticket, oldest first.
func (s *TicketService) List(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.tickets.List(ctx)
}

// SetStatus replaces the ticket status unconditionally. Any transition
// among the three states is permitted; setting the current status again
// is a no-op, not an error.
func (s *TicketService) SetStatus(ctx context.Context, ticketID string, status domain.TicketStatus) (*domain.SupportTicket, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status must be one of: OPEN, PROCESSING, CLOSED", nil)
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, err
	}
	if ticket.Status == status {
		return ticket, nil
	}

	oldStatus := ticket.Status
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketStatusChanged, ticket.ClientID, events.TicketStatusChangedPayload{
		TicketID:  ticket.ID,
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, clientID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ClientID:  clientID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}
