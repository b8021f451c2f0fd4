package dto

import (
	"github.com/spec-kit/console-service/internal/domain"
)

// FeatureResponse describes one catalog entry and whether the current
// account is entitled to it.
type FeatureResponse struct {
	Key         domain.FeatureKey `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Route       string            `json:"route"`
	Available   bool              `json:"available"`
}

// NewFeatureResponse maps a catalog entry against an account.
func NewFeatureResponse(feature domain.Feature, account *domain.ClientAccount) FeatureResponse {
	return FeatureResponse{
		Key:         feature.Key,
		Name:        feature.Name,
		Description: feature.Description,
		Route:       feature.Route,
		Available:   account.HasFeature(feature.Key),
	}
}

// PaymentMethodResponse describes one display-only payment method.
type PaymentMethodResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
