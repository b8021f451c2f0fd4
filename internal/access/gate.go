// Package access implements the authorization decision function for
// role- and entitlement-based routing. Route-level authorization is
// coarse: the wrong role is redirected. Feature-level authorization is
// fine-grained: an entitled route loads but renders a feature-unavailable
// notice when the account lacks the key. The asymmetry is deliberate and
// callers must preserve it.
package access

import (
	"strings"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/registry"
)

// Console route constants outside the feature catalog.
const (
	RouteLogin           = "/auth/login"
	RouteLogout          = "/auth/logout"
	RouteSession         = "/session"
	RouteAdminDashboard  = "/admin/dashboard"
	RouteAdminClients    = "/admin/clients"
	RouteAdminTickets    = "/admin/tickets"
	RouteClientDashboard = "/client/dashboard"
	RouteClientAccount   = "/client/account"
	RouteClientPayment   = "/client/payment"
	RouteClientTickets   = "/client/tickets"
	RouteHealthLive      = "/health/live"
	RouteHealthReady     = "/health/ready"
)

// Class is the closed set of route categories.
type Class int

const (
	ClassPublic Class = iota
	ClassAdminOnly
	ClassClientOnly
)

// Rule classifies one route. Feature is set only for routes backed by a
// feature key.
type Rule struct {
	Class   Class
	Feature domain.FeatureKey
}

// Decision is the outcome of an authorization check: either the route may
// load, or the caller must be sent to Target.
type Decision struct {
	Allow  bool
	Target string
}

func allow() Decision                 { return Decision{Allow: true} }
func redirect(target string) Decision { return Decision{Target: target} }

// Gate decides route access from role and path alone. It holds no mutable
// state, so identical inputs always yield identical decisions.
type Gate struct {
	exact    map[string]Rule
	features []domain.Feature
}

// NewGate builds the route table from the fixed console routes plus the
// feature catalog.
func NewGate(reg *registry.Registry) *Gate {
	g := &Gate{exact: map[string]Rule{
		RouteLogin:           {Class: ClassPublic},
		RouteLogout:          {Class: ClassPublic},
		RouteSession:         {Class: ClassPublic},
		RouteHealthLive:      {Class: ClassPublic},
		RouteHealthReady:     {Class: ClassPublic},
		RouteAdminDashboard:  {Class: ClassAdminOnly},
		RouteAdminClients:    {Class: ClassAdminOnly},
		RouteAdminTickets:    {Class: ClassAdminOnly},
		RouteClientDashboard: {Class: ClassClientOnly},
		RouteClientAccount:   {Class: ClassClientOnly},
		RouteClientPayment:   {Class: ClassClientOnly},
		RouteClientTickets:   {Class: ClassClientOnly},
	}}
	for _, f := range reg.Features() {
		g.exact[f.Route] = Rule{Class: ClassClientOnly, Feature: f.Key}
		g.features = append(g.features, f)
	}
	return g
}

// Classify resolves the rule governing a path. Sub-paths inherit the rule
// of their parent route, so operations under a feature route (search,
// purchase, generate) carry that feature's key. Admin and client
// sub-resources inherit their section's class.
func (g *Gate) Classify(path string) (Rule, bool) {
	if rule, ok := g.exact[path]; ok {
		return rule, true
	}
	for _, f := range g.features {
		if strings.HasPrefix(path, f.Route+"/") {
			return Rule{Class: ClassClientOnly, Feature: f.Key}, true
		}
	}
	switch {
	case strings.HasPrefix(path, RouteSession+"/"):
		return Rule{Class: ClassPublic}, true
	case strings.HasPrefix(path, RouteAdminClients+"/") || strings.HasPrefix(path, RouteAdminTickets+"/"):
		return Rule{Class: ClassAdminOnly}, true
	case strings.HasPrefix(path, RouteClientTickets+"/"):
		return Rule{Class: ClassClientOnly}, true
	}
	return Rule{}, false
}

// Authorize decides whether role may load path. Unauthenticated callers
// are redirected to login for any non-public route; a role mismatch is
// redirected to login; unmatched routes fall back to the role's landing
// route instead of an error.
func (g *Gate) Authorize(role domain.Role, path string) Decision {
	rule, known := g.Classify(path)
	if !known {
		return redirect(DefaultLanding(role))
	}
	switch rule.Class {
	case ClassPublic:
		return allow()
	case ClassAdminOnly:
		if role == domain.RoleAdmin {
			return allow()
		}
	case ClassClientOnly:
		if role == domain.RoleClient {
			return allow()
		}
	}
	return redirect(RouteLogin)
}

// FeatureFor returns the feature key gating a path, if any. Entitlement
// enforcement stays with the caller: a missing entitlement renders an
// in-page notice, never a redirect.
func (g *Gate) FeatureFor(path string) (domain.FeatureKey, bool) {
	rule, ok := g.Classify(path)
	if !ok || rule.Feature == "" {
		return "", false
	}
	return rule.Feature, true
}

// DefaultLanding maps a role to its landing route.
func DefaultLanding(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return RouteAdminDashboard
	case domain.RoleClient:
		return RouteClientDashboard
	default:
		return RouteLogin
	}
}
