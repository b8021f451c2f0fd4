package domain

import "sort"

// FeatureKey identifies one gated capability offered to client accounts.
// The set is fixed at process start; keys are never created or destroyed
// at runtime.
type FeatureKey string

const (
	FeatureFacebookExtraction FeatureKey = "facebook_extraction"
	FeatureWhatsAppCampaign   FeatureKey = "whatsapp_campaign"
	FeatureInstaTelegramTools FeatureKey = "insta_telegram_tools"
	FeatureFacebookDataPoints FeatureKey = "facebook_data_points"
	FeatureSMSCampaign        FeatureKey = "sms_campaign"
	FeatureOnlineExtraction   FeatureKey = "online_extraction"
	FeatureAIGateway          FeatureKey = "ai_gateway"
)

// AllFeatureKeys returns every defined key.
func AllFeatureKeys() []FeatureKey {
	return []FeatureKey{
		FeatureFacebookExtraction,
		FeatureWhatsAppCampaign,
		FeatureInstaTelegramTools,
		FeatureFacebookDataPoints,
		FeatureSMSCampaign,
		FeatureOnlineExtraction,
		FeatureAIGateway,
	}
}

// Valid reports whether the key belongs to the defined set.
func (k FeatureKey) Valid() bool {
	for _, known := range AllFeatureKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// Feature carries display metadata and the route serving the capability.
type Feature struct {
	Key         FeatureKey
	Name        string
	Description string
	Route       string
}

// FeatureSet is an unordered, unique collection of feature keys.
type FeatureSet map[FeatureKey]struct{}

// NewFeatureSet builds a set from the given keys.
func NewFeatureSet(keys ...FeatureKey) FeatureSet {
	set := make(FeatureSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s FeatureSet) Has(key FeatureKey) bool {
	_, ok := s[key]
	return ok
}

// Toggle adds the key when absent and removes it when present, returning
// whether the key is enabled afterwards. Toggling twice restores the set.
func (s FeatureSet) Toggle(key FeatureKey) bool {
	if _, ok := s[key]; ok {
		delete(s, key)
		return false
	}
	s[key] = struct{}{}
	return true
}

// Keys returns the members in stable order.
func (s FeatureSet) Keys() []FeatureKey {
	keys := make([]FeatureKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns an independent copy.
func (s FeatureSet) Clone() FeatureSet {
	clone := make(FeatureSet, len(s))
	for k := range s {
		clone[k] = struct{}{}
	}
	return clone
}
