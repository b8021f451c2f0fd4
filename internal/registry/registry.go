// Package registry holds the static feature catalog: for every feature
// key, its display metadata and the route that serves it. The catalog is
// pure data; the only operations are lookups.
package registry

import (
	"fmt"

	"github.com/spec-kit/console-service/internal/domain"
)

// Registry indexes the feature catalog by key and by route. Construction
// enforces a 1:1 mapping between keys and routes.
type Registry struct {
	byKey   map[domain.FeatureKey]domain.Feature
	byRoute map[string]domain.Feature
	ordered []domain.Feature
}

// New builds a registry from the given catalog. Duplicate keys or routes
// are a configuration error.
func New(features []domain.Feature) (*Registry, error) {
	r := &Registry{
		byKey:   make(map[domain.FeatureKey]domain.Feature, len(features)),
		byRoute: make(map[string]domain.Feature, len(features)),
		ordered: make([]domain.Feature, 0, len(features)),
	}
	for _, f := range features {
		if !f.Key.Valid() {
			return nil, fmt.Errorf("unknown feature key %q", f.Key)
		}
		if _, exists := r.byKey[f.Key]; exists {
			return nil, fmt.Errorf("duplicate feature key %q", f.Key)
		}
		if _, exists := r.byRoute[f.Route]; exists {
			return nil, fmt.Errorf("duplicate feature route %q", f.Route)
		}
		r.byKey[f.Key] = f
		r.byRoute[f.Route] = f
		r.ordered = append(r.ordered, f)
	}
	return r, nil
}

// DefaultFeatures returns the catalog the console ships with.
func DefaultFeatures() []domain.Feature {
	return []domain.Feature{
		{Key: domain.FeatureFacebookExtraction, Name: "Facebook Data Extraction + Bot", Description: "Extract data from Facebook and automate tasks.", Route: "/client/feature/facebook-extraction"},
		{Key: domain.FeatureWhatsAppCampaign, Name: "WhatsApp Campaign + Bot", Description: "Run WhatsApp marketing campaigns.", Route: "/client/feature/whatsapp-campaign"},
		{Key: domain.FeatureInstaTelegramTools, Name: "Instagram & Telegram Tools", Description: "Marketing tools for Instagram and Telegram.", Route: "/client/feature/insta-telegram"},
		{Key: domain.FeatureFacebookDataPoints, Name: "Facebook Data (Point-Based)", Description: "Access Facebook data using points.", Route: "/client/feature/facebook-data-points"},
		{Key: domain.FeatureSMSCampaign, Name: "SMS Campaign Tool", Description: "Manage SMS campaigns with your API.", Route: "/client/feature/sms-campaign"},
		{Key: domain.FeatureOnlineExtraction, Name: "Online Data Extraction", Description: "Extract data from Google Maps, OLX, etc.", Route: "/client/feature/online-extraction"},
		{Key: domain.FeatureAIGateway, Name: "AI Gateway", Description: "Access AI models via API.", Route: "/client/feature/ai-gateway"},
	}
}

// ByKey looks up a feature by its key.
func (r *Registry) ByKey(key domain.FeatureKey) (domain.Feature, bool) {
	f, ok := r.byKey[key]
	return f, ok
}

// ByRoute looks up a feature by the route serving it.
func (r *Registry) ByRoute(route string) (domain.Feature, bool) {
	f, ok := r.byRoute[route]
	return f, ok
}

// Features returns the catalog in registration order.
func (r *Registry) Features() []domain.Feature {
	out := make([]domain.Feature, len(r.ordered))
	copy(out, r.ordered)
	return out
}
