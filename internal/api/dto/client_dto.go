package dto

import (
	"github.com/spec-kit/console-service/internal/domain"
)

// ClientResponse describes one client account.
type ClientResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	SubscriptionEnd string              `json:"subscription_end"`
	Points          int                 `json:"points"`
	AllowedFeatures []domain.FeatureKey `json:"allowed_features"`
	TokenStatus     domain.TokenStatus  `json:"token_status"`
}

// NewClientResponse maps a domain account.
func NewClientResponse(account *domain.ClientAccount) ClientResponse {
	return ClientResponse{
		ID:              account.ID,
		Name:            account.Name,
		Email:           account.Email,
		SubscriptionEnd: account.SubscriptionEnd.Format("2006-01-02"),
		Points:          account.Points,
		AllowedFeatures: account.AllowedFeatures.Keys(),
		TokenStatus:     account.TokenStatus,
	}
}

// ToggleFeatureRequest payload.
type ToggleFeatureRequest struct {
	Feature string `json:"feature" validate:"required"`
}

// ToggleFeatureResponse reports the resulting entitlement.
type ToggleFeatureResponse struct {
	Client  ClientResponse `json:"client"`
	Enabled bool           `json:"enabled"`
}

// SetSubscriptionRequest payload. The date is a calendar day.
type SetSubscriptionRequest struct {
	SubscriptionEnd string `json:"subscription_end" validate:"required,datetime=2006-01-02"`
}

// AdjustPointsRequest payload. Delta may be negative; zero is rejected.
type AdjustPointsRequest struct {
	Delta int `json:"delta" validate:"required"`
}
