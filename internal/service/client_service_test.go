package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/events"
)

func TestToggleFeature_SelfInverse(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())
	ctx := context.Background()

	before, err := svc.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	original := before.AllowedFeatures.Keys()

	if _, enabled, err := svc.ToggleFeature(ctx, "c1", domain.FeatureWhatsAppCampaign); err != nil || !enabled {
		t.Fatalf("first toggle: enabled=%v err=%v", enabled, err)
	}
	if _, enabled, err := svc.ToggleFeature(ctx, "c1", domain.FeatureWhatsAppCampaign); err != nil || enabled {
		t.Fatalf("second toggle: enabled=%v err=%v", enabled, err)
	}

	after, err := svc.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get after: %v", err)
	}
	restored := after.AllowedFeatures.Keys()
	if len(restored) != len(original) {
		t.Fatalf("feature set not restored: %v vs %v", restored, original)
	}
	for i := range original {
		if restored[i] != original[i] {
			t.Fatalf("feature set not restored: %v vs %v", restored, original)
		}
	}
}

func TestToggleFeature_UnknownKey(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())

	_, _, err := svc.ToggleFeature(context.Background(), "c1", "no_such_feature")
	if domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestToggleFeature_PublishesEvent(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc := NewClientService(seededClients(), dispatcher, testLogger())

	if _, _, err := svc.ToggleFeature(context.Background(), "2", domain.FeatureSMSCampaign); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	toggled := dispatcher.ofType(events.EventFeatureToggled)
	if len(toggled) != 1 {
		t.Fatalf("expected one feature_toggled event, got %d", len(toggled))
	}
	payload, ok := toggled[0].Payload.(events.FeatureToggledPayload)
	if !ok || payload.Feature != domain.FeatureSMSCampaign || !payload.Enabled {
		t.Fatalf("unexpected payload %+v", toggled[0].Payload)
	}
}

func TestAdjustPoints_RoundTrip(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())
	ctx := context.Background()

	start, _ := svc.Get(ctx, "1")

	if _, err := svc.AdjustPoints(ctx, "1", 250); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AdjustPoints(ctx, "1", -250); err != nil {
		t.Fatalf("subtract: %v", err)
	}

	end, _ := svc.Get(ctx, "1")
	if end.Points != start.Points {
		t.Fatalf("balance drifted: %d -> %d", start.Points, end.Points)
	}
}

func TestAdjustPoints_AllowsNegativeBalance(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())

	account, err := svc.AdjustPoints(context.Background(), "2", -10000)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if account.Points >= 0 {
		t.Fatalf("expected negative balance, got %d", account.Points)
	}
}

func TestSetSubscriptionEnd_AcceptsPastDates(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())

	past := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	account, err := svc.SetSubscriptionEnd(context.Background(), "1", past)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !account.SubscriptionEnd.Equal(past) {
		t.Fatalf("date not applied: %v", account.SubscriptionEnd)
	}
}

func TestClientService_NotFound(t *testing.T) {
	svc := NewClientService(seededClients(), nil, testLogger())
	ctx := context.Background()

	if _, err := svc.Get(ctx, "missing"); domainCode(err) != "NOT_FOUND" {
		t.Fatalf("get: expected NOT_FOUND, got %v", err)
	}
	if _, err := svc.AdjustPoints(ctx, "missing", 5); domainCode(err) != "NOT_FOUND" {
		t.Fatalf("adjust: expected NOT_FOUND, got %v", err)
	}
}
