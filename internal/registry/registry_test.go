package registry

import (
	"testing"

	"github.com/spec-kit/console-service/internal/domain"
)

func TestNew_DefaultCatalog(t *testing.T) {
	reg, err := New(DefaultFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(reg.Features()); got != 7 {
		t.Fatalf("expected 7 features, got %d", got)
	}

	feature, ok := reg.ByKey(domain.FeatureAIGateway)
	if !ok {
		t.Fatalf("ai_gateway not found by key")
	}
	if feature.Route != "/client/feature/ai-gateway" {
		t.Fatalf("unexpected route %q", feature.Route)
	}

	byRoute, ok := reg.ByRoute(feature.Route)
	if !ok || byRoute.Key != domain.FeatureAIGateway {
		t.Fatalf("route lookup mismatch: %+v", byRoute)
	}
}

func TestDefaultFeatures_CoverEveryKey(t *testing.T) {
	byKey := make(map[domain.FeatureKey]bool)
	for _, f := range DefaultFeatures() {
		byKey[f.Key] = true
	}
	for _, key := range domain.AllFeatureKeys() {
		if !byKey[key] {
			t.Fatalf("default catalog missing %s", key)
		}
	}
}

func TestNew_DuplicateRoute(t *testing.T) {
	_, err := New([]domain.Feature{
		{Key: domain.FeatureSMSCampaign, Name: "SMS", Route: "/client/feature/x"},
		{Key: domain.FeatureAIGateway, Name: "AI", Route: "/client/feature/x"},
	})
	if err == nil {
		t.Fatalf("expected duplicate route error")
	}
}

func TestNew_DuplicateKey(t *testing.T) {
	_, err := New([]domain.Feature{
		{Key: domain.FeatureSMSCampaign, Name: "SMS", Route: "/client/feature/a"},
		{Key: domain.FeatureSMSCampaign, Name: "SMS again", Route: "/client/feature/b"},
	})
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestNew_UnknownKey(t *testing.T) {
	_, err := New([]domain.Feature{
		{Key: "bogus", Name: "Bogus", Route: "/client/feature/bogus"},
	})
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
}
