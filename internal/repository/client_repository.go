package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/spec-kit/console-service/internal/domain"
)

// ClientRepository defines access to the client record store.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ClientAccount, error)
	List(ctx context.Context) ([]domain.ClientAccount, error)
	Update(ctx context.Context, account *domain.ClientAccount) error
}

type memoryClientRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.ClientAccount
}

// NewMemoryClientRepository returns an in-memory store holding the given
// seed accounts. Accounts are cloned on the way in and out so callers
// never share mutable state with the store.
func NewMemoryClientRepository(seed []domain.ClientAccount) ClientRepository {
	accounts := make(map[string]*domain.ClientAccount, len(seed))
	for i := range seed {
		accounts[seed[i].ID] = seed[i].Clone()
	}
	return &memoryClientRepository{accounts: accounts}
}

func (r *memoryClientRepository) GetByID(_ context.Context, id string) (*domain.ClientAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return account.Clone(), nil
}

func (r *memoryClientRepository) List(_ context.Context) ([]domain.ClientAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ClientAccount, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, *account.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryClientRepository) Update(_ context.Context, account *domain.ClientAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return ErrNotFound
	}
	r.accounts[account.ID] = account.Clone()
	return nil
}
