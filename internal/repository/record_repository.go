package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/console-service/internal/domain"
)

// RecordRepository defines access to the audience record catalog and the
// per-client purchase ledger. Records carry their phone numbers here;
// withholding them from unpurchased results is the service's job.
type RecordRepository interface {
	SearchByIdentifier(ctx context.Context, term string) ([]domain.AudienceRecord, error)
	SearchByFilter(ctx context.Context, country, city string) ([]domain.AudienceRecord, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.AudienceRecord, error)
	MarkPurchased(ctx context.Context, clientID string, ids []string) error
	PurchasedIDs(ctx context.Context, clientID string) (map[string]struct{}, error)
}

type memoryRecordRepository struct {
	mu        sync.RWMutex
	records   []domain.AudienceRecord
	purchased map[string]map[string]struct{}
}

// NewMemoryRecordRepository returns an in-memory catalog with an empty
// purchase ledger.
func NewMemoryRecordRepository(seed []domain.AudienceRecord) RecordRepository {
	records := make([]domain.AudienceRecord, len(seed))
	copy(records, seed)
	return &memoryRecordRepository{
		records:   records,
		purchased: make(map[string]map[string]struct{}),
	}
}

func (r *memoryRecordRepository) SearchByIdentifier(_ context.Context, term string) ([]domain.AudienceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(term)
	var out []domain.AudienceRecord
	for _, rec := range r.records {
		if rec.ID == term || strings.Contains(strings.ToLower(rec.Name), needle) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRecordRepository) SearchByFilter(_ context.Context, country, city string) ([]domain.AudienceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	country = strings.ToLower(country)
	city = strings.ToLower(city)
	var out []domain.AudienceRecord
	for _, rec := range r.records {
		if country != "" && !strings.Contains(strings.ToLower(rec.Country), country) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(rec.City), city) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memoryRecordRepository) GetByIDs(_ context.Context, ids []string) ([]domain.AudienceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[string]domain.AudienceRecord, len(r.records))
	for _, rec := range r.records {
		byID[rec.ID] = rec
	}
	out := make([]domain.AudienceRecord, 0, len(ids))
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok {
			return nil, ErrNotFound
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memoryRecordRepository) MarkPurchased(_ context.Context, clientID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned, ok := r.purchased[clientID]
	if !ok {
		owned = make(map[string]struct{}, len(ids))
		r.purchased[clientID] = owned
	}
	for _, id := range ids {
		owned[id] = struct{}{}
	}
	return nil
}

func (r *memoryRecordRepository) PurchasedIDs(_ context.Context, clientID string) (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]struct{}, len(r.purchased[clientID]))
	for id := range r.purchased[clientID] {
		out[id] = struct{}{}
	}
	return out, nil
}
