package access

import (
	"testing"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/registry"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	reg, err := registry.New(registry.DefaultFeatures())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return NewGate(reg)
}

func TestAuthorize_Unauthenticated(t *testing.T) {
	gate := newTestGate(t)

	for _, path := range []string{
		RouteAdminDashboard,
		RouteAdminClients,
		RouteClientDashboard,
		"/client/feature/ai-gateway",
	} {
		d := gate.Authorize(domain.RoleNone, path)
		if d.Allow {
			t.Fatalf("%s: expected redirect for unauthenticated caller", path)
		}
		if d.Target != RouteLogin {
			t.Fatalf("%s: expected login target, got %q", path, d.Target)
		}
	}

	if d := gate.Authorize(domain.RoleNone, RouteLogin); !d.Allow {
		t.Fatalf("login route must be public")
	}
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	gate := newTestGate(t)

	if d := gate.Authorize(domain.RoleClient, RouteAdminClients); d.Allow || d.Target != RouteLogin {
		t.Fatalf("client on admin route: got %+v", d)
	}
	if d := gate.Authorize(domain.RoleAdmin, RouteClientDashboard); d.Allow || d.Target != RouteLogin {
		t.Fatalf("admin on client route: got %+v", d)
	}
}

func TestAuthorize_MatchingRole(t *testing.T) {
	gate := newTestGate(t)

	if d := gate.Authorize(domain.RoleAdmin, RouteAdminTickets); !d.Allow {
		t.Fatalf("admin on admin route: got %+v", d)
	}
	if d := gate.Authorize(domain.RoleClient, "/client/feature/sms-campaign"); !d.Allow {
		t.Fatalf("client on feature route: got %+v", d)
	}
}

func TestAuthorize_UnknownRouteFallsBackToLanding(t *testing.T) {
	gate := newTestGate(t)

	cases := []struct {
		role   domain.Role
		target string
	}{
		{domain.RoleAdmin, RouteAdminDashboard},
		{domain.RoleClient, RouteClientDashboard},
		{domain.RoleNone, RouteLogin},
	}
	for _, tc := range cases {
		d := gate.Authorize(tc.role, "/no/such/route")
		if d.Allow || d.Target != tc.target {
			t.Fatalf("role %s: got %+v, want target %q", tc.role, d, tc.target)
		}
	}
}

func TestAuthorize_Pure(t *testing.T) {
	gate := newTestGate(t)

	first := gate.Authorize(domain.RoleClient, RouteAdminClients)
	for i := 0; i < 50; i++ {
		if got := gate.Authorize(domain.RoleClient, RouteAdminClients); got != first {
			t.Fatalf("decision changed between identical calls: %+v vs %+v", got, first)
		}
	}
}

func TestClassify_FeatureSubPaths(t *testing.T) {
	gate := newTestGate(t)

	key, ok := gate.FeatureFor("/client/feature/facebook-data-points/search")
	if !ok || key != domain.FeatureFacebookDataPoints {
		t.Fatalf("sub-path should inherit the feature key, got %q ok=%v", key, ok)
	}

	if _, ok := gate.FeatureFor(RouteClientDashboard); ok {
		t.Fatalf("dashboard is not feature-gated")
	}
}

func TestClassify_SessionSubPaths(t *testing.T) {
	gate := newTestGate(t)

	rule, ok := gate.Classify("/session/language")
	if !ok || rule.Class != ClassPublic {
		t.Fatalf("session sub-routes are public, got %+v ok=%v", rule, ok)
	}
}
