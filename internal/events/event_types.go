package events

import (
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFeatureToggled      EventType = "client_feature_toggled"
	EventPointsAdjusted      EventType = "client_points_adjusted"
	EventSubscriptionUpdated EventType = "client_subscription_updated"
	EventTicketSubmitted     EventType = "ticket_submitted"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventRecordsPurchased    EventType = "records_purchased"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// FeatureToggledPayload payload.
type FeatureToggledPayload struct {
	Feature domain.FeatureKey `json:"feature"`
	Enabled bool              `json:"enabled"`
}

// PointsAdjustedPayload payload.
type PointsAdjustedPayload struct {
	Delta   int `json:"delta"`
	Balance int `json:"balance"`
}

// SubscriptionUpdatedPayload payload.
type SubscriptionUpdatedPayload struct {
	SubscriptionEnd string `json:"subscription_end"`
}

// TicketSubmittedPayload payload.
type TicketSubmittedPayload struct {
	TicketID string `json:"ticket_id"`
	Subject  string `json:"subject"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// RecordsPurchasedPayload payload.
type RecordsPurchasedPayload struct {
	RecordIDs []string `json:"record_ids"`
	Cost      int      `json:"cost"`
	Balance   int      `json:"balance"`
}
