package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/spec-kit/console-service/internal/domain"
)

// TicketRepository defines access to the support ticket store.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) error
	GetByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]domain.SupportTicket, error)
	Update(ctx context.Context, ticket *domain.SupportTicket) error
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.SupportTicket
}

// NewMemoryTicketRepository returns an in-memory store holding the given
// seed tickets.
func NewMemoryTicketRepository(seed []domain.SupportTicket) TicketRepository {
	tickets := make(map[string]domain.SupportTicket, len(seed))
	for _, t := range seed {
		tickets[t.ID] = t
	}
	return &memoryTicketRepository{tickets: tickets}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r *memoryTicketRepository) List(_ context.Context) ([]domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SupportTicket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryTicketRepository) Update(_ context.Context, ticket *domain.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return ErrNotFound
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}
