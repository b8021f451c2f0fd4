package domain

import "time"

// TokenStatus reports the health of a client's external platform token.
type TokenStatus string

const (
	TokenStatusValid   TokenStatus = "valid"
	TokenStatusInvalid TokenStatus = "invalid"
	TokenStatusUnknown TokenStatus = "unknown"
)

// ClientAccount is the aggregate for a provisioned client. Accounts are
// seeded at startup, mutated only through administrative operations and
// never deleted. SubscriptionEnd is display-only; nothing compares it
// against the current time. Points carry no floor: an administrative
// deduction may push the balance negative.
type ClientAccount struct {
	ID              string
	Name            string
	Email           string
	SubscriptionEnd time.Time
	Points          int
	AllowedFeatures FeatureSet
	TokenStatus     TokenStatus
}

// HasFeature reports whether the account is entitled to the feature.
func (c *ClientAccount) HasFeature(key FeatureKey) bool {
	return c.AllowedFeatures.Has(key)
}

// Clone returns a deep copy safe to hand across store boundaries.
func (c *ClientAccount) Clone() *ClientAccount {
	clone := *c
	clone.AllowedFeatures = c.AllowedFeatures.Clone()
	return &clone
}
