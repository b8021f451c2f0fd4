package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// ClientService carries the administrative operations over client
// accounts: entitlement toggles, subscription dates and point balances.
type ClientService struct {
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ClientService {
	return &ClientService{clients: clients, dispatcher: dispatcher, logger: logger}
}

// List returns every client account.
func (s *ClientService) List(ctx context.Context) ([]domain.ClientAccount, error) {
	return s.clients.List(ctx)
}

// Get returns one client account.
func (s *ClientService) Get(ctx context.Context, clientID string) (*domain.ClientAccount, error) {
	return s.getClient(ctx, clientID)
}

// ToggleFeature flips the feature key in or out of the client's
// entitlement set and reports whether it is enabled afterwards. Applying
// the toggle twice restores the original set.
func (s *ClientService) ToggleFeature(ctx context.Context, clientID string, key domain.FeatureKey) (*domain.ClientAccount, bool, error) {
	if !key.Valid() {
		return nil, false, apperrors.NewValidationError("unknown feature key", map[string]any{"feature": string(key)})
	}
	account, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, false, err
	}

	enabled := account.AllowedFeatures.Toggle(key)
	if err := s.clients.Update(ctx, account); err != nil {
		return nil, false, err
	}

	s.publish(ctx, events.EventFeatureToggled, clientID, events.FeatureToggledPayload{
		Feature: key,
		Enabled: enabled,
	})
	return account, enabled, nil
}

// SetSubscriptionEnd replaces the subscription end date unconditionally.
// The date is display-only; no comparison against the current time gates
// anything, and past dates are accepted.
func (s *ClientService) SetSubscriptionEnd(ctx context.Context, clientID string, end time.Time) (*domain.ClientAccount, error) {
	account, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	account.SubscriptionEnd = end
	if err := s.clients.Update(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventSubscriptionUpdated, clientID, events.SubscriptionUpdatedPayload{
		SubscriptionEnd: end.Format("2006-01-02"),
	})
	return account, nil
}

// AdjustPoints applies the delta to the client's balance. The balance
// carries no floor: an administrative deduction may leave it negative.
func (s *ClientService) AdjustPoints(ctx context.Context, clientID string, delta int) (*domain.ClientAccount, error) {
	account, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	account.Points += delta
	if err := s.clients.Update(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPointsAdjusted, clientID, events.PointsAdjustedPayload{
		Delta:   delta,
		Balance: account.Points,
	})
	return account, nil
}

func (s *ClientService) getClient(ctx context.Context, clientID string) (*domain.ClientAccount, error) {
	account, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": clientID})
		}
		return nil, err
	}
	return account, nil
}

func (s *ClientService) publish(ctx context.Context, eventType events.EventType, clientID string, payload interface{}) {
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
