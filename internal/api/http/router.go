package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/access"
	"github.com/spec-kit/console-service/internal/api/http/handlers"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/registry"
	"github.com/spec-kit/console-service/internal/service"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	AdminClients   *handlers.AdminClientsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	Portal         *handlers.PortalHandler
	Records        *handlers.RecordsHandler
	Gateway        *handlers.GatewayHandler
	AuthMiddleware *auth.Middleware
	Gate           *access.Gate
	Registry       *registry.Registry
	Clients        *service.ClientService
}

// RegisterRoutes wires HTTP routes. The auth middleware resolves the
// caller's role, the access gate authorizes it per route class, and the
// entitlement middleware turns missing feature keys into in-page notices
// on feature routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthMiddleware.Handle)
	app.Use(AccessGateMiddleware(cfg.Gate))
	app.Use(EntitlementMiddleware(cfg.Gate, cfg.Clients))

	app.Get(access.RouteHealthLive, cfg.Health.Live)
	app.Get(access.RouteHealthReady, cfg.Health.Ready)

	app.Post(access.RouteLogin, cfg.Session.Login)
	app.Post(access.RouteLogout, cfg.Session.Logout)
	app.Get(access.RouteSession, cfg.Session.GetSession)
	app.Put(access.RouteSession+"/language", cfg.Session.SetLanguage)
	app.Put(access.RouteSession+"/theme", cfg.Session.SetTheme)

	app.Get(access.RouteAdminDashboard, cfg.AdminClients.Dashboard)
	app.Get(access.RouteAdminClients, cfg.AdminClients.List)
	app.Post(access.RouteAdminClients+"/:id/features/toggle", cfg.AdminClients.ToggleFeature)
	app.Put(access.RouteAdminClients+"/:id/subscription", cfg.AdminClients.SetSubscription)
	app.Post(access.RouteAdminClients+"/:id/points", cfg.AdminClients.AdjustPoints)
	app.Get(access.RouteAdminTickets, cfg.AdminTickets.List)
	app.Put(access.RouteAdminTickets+"/:id/status", cfg.AdminTickets.SetStatus)

	app.Get(access.RouteClientDashboard, cfg.Portal.Dashboard)
	app.Get(access.RouteClientAccount, cfg.Portal.Account)
	app.Get(access.RouteClientPayment, cfg.Portal.Payment)
	app.Post(access.RouteClientTickets, cfg.Portal.SubmitTicket)

	for _, feature := range cfg.Registry.Features() {
		app.Get(feature.Route, cfg.Portal.FeaturePage)
	}

	dataPoints := mustFeature(cfg.Registry, domain.FeatureFacebookDataPoints)
	app.Post(dataPoints.Route+"/search", cfg.Records.Search)
	app.Post(dataPoints.Route+"/purchase", cfg.Records.Purchase)

	aiGateway := mustFeature(cfg.Registry, domain.FeatureAIGateway)
	app.Post(aiGateway.Route+"/generate", cfg.Gateway.Generate)

	app.Use(FallbackMiddleware())
}

// mustFeature resolves a catalog entry whose route carries operation
// sub-paths. A miss is a wiring error, caught at registration rather
// than surfacing as routes bound to an empty base path.
func mustFeature(reg *registry.Registry, key domain.FeatureKey) domain.Feature {
	feature, ok := reg.ByKey(key)
	if !ok {
		panic(fmt.Sprintf("feature catalog missing %s", key))
	}
	return feature
}
