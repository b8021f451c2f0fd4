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

// SearchMode selects how the audience catalog is queried.
type SearchMode string

const (
	SearchModeByIdentifier SearchMode = "by_identifier"
	SearchModeByFilter     SearchMode = "by_filter"
)

// SearchInput describes one catalog query.
type SearchInput struct {
	Mode    SearchMode
	Term    string
	Country string
	City    string
}

// PurchaseResult carries the purchased records with phone numbers
// revealed, plus the cost and the remaining balance.
type PurchaseResult struct {
	Records []domain.AudienceRecord
	Cost    int
	Balance int
}

// RecordService implements the point-based record search and purchase
// feature. Phone numbers are withheld from search results until the
// requesting client has purchased the record.
type RecordService struct {
	records    repository.RecordRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	price      int
}

// NewRecordService constructs the service. pricePerRecord below 1 falls
// back to the fixed design price of one point per record.
func NewRecordService(records repository.RecordRepository, clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger, pricePerRecord int) *RecordService {
	if pricePerRecord < 1 {
		pricePerRecord = 1
	}
	return &RecordService{records: records, clients: clients, dispatcher: dispatcher, logger: logger, price: pricePerRecord}
}

// Search queries the catalog. Results include a phone number only for
// records the client already purchased.
func (s *RecordService) Search(ctx context.Context, clientID string, input SearchInput) ([]domain.AudienceRecord, error) {
	var (
		results []domain.AudienceRecord
		err     error
	)
	switch input.Mode {
	case SearchModeByIdentifier:
		if strings.TrimSpace(input.Term) == "" {
			return nil, apperrors.NewValidationError("search term is required", nil)
		}
		results, err = s.records.SearchByIdentifier(ctx, strings.TrimSpace(input.Term))
	case SearchModeByFilter:
		results, err = s.records.SearchByFilter(ctx, strings.TrimSpace(input.Country), strings.TrimSpace(input.City))
	default:
		return nil, apperrors.NewValidationError("mode must be one of: by_identifier, by_filter", nil)
	}
	if err != nil {
		return nil, err
	}

	purchased, err := s.records.PurchasedIDs(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if _, ok := purchased[results[i].ID]; !ok {
			results[i].PhoneNumber = ""
		}
	}
	return results, nil
}

// Purchase buys the selected records for the client at the fixed price
// per record. An insufficient balance rejects the purchase before any
// mutation; on success the balance is decremented and phone numbers are
// revealed for exactly the purchased ids.
func (s *RecordService) Purchase(ctx context.Context, clientID string, recordIDs []string) (*PurchaseResult, error) {
	ids := dedupe(recordIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("at least one record id is required", nil)
	}

	records, err := s.records.GetByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("record", map[string]any{"ids": ids})
		}
		return nil, err
	}

	account, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": clientID})
		}
		return nil, err
	}

	cost := len(ids) * s.price
	if account.Points < cost {
		return nil, apperrors.NewInsufficientPoints(cost, account.Points)
	}

	account.Points -= cost
	if err := s.clients.Update(ctx, account); err != nil {
		return nil, err
	}
	if err := s.records.MarkPurchased(ctx, clientID, ids); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		err := s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRecordsPurchased,
			ClientID:  clientID,
			Timestamp: time.Now().UTC(),
			Payload: events.RecordsPurchasedPayload{
				RecordIDs: ids,
				Cost:      cost,
				Balance:   account.Points,
			},
		})
		if err != nil {
			s.logger.Warn("event publish failed", zap.String("type", string(events.EventRecordsPurchased)), zap.Error(err))
		}
	}

	return &PurchaseResult{Records: records, Cost: cost, Balance: account.Points}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
