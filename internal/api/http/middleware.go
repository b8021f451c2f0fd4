package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/access"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/observability"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// AccessGateMiddleware authorizes every request by role and path. Denied
// requests are redirected, never failed: unauthenticated or wrong-role
// callers go to login, unmatched paths to the role's landing route.
func AccessGateMiddleware(gate *access.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := gate.Authorize(auth.RoleFromContext(c), c.Path())
		if !decision.Allow {
			return c.Redirect(decision.Target, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// EntitlementMiddleware enforces fine-grained feature access for client
// sessions. Unlike the access gate it does not redirect: the route loads
// and renders a feature-unavailable notice when the account lacks the
// key, so the caller stays on the route.
func EntitlementMiddleware(gate *access.Gate, clients *service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, gated := gate.FeatureFor(c.Path())
		if !gated {
			return c.Next()
		}

		principal, ok := auth.PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleClient {
			return c.Next()
		}
		if principal.ClientID == "" {
			return apperrors.NewUnauthorized("client session required")
		}

		account, err := clients.Get(c.Context(), principal.ClientID)
		if err != nil {
			return err
		}
		if !account.HasFeature(key) {
			return c.JSON(fiber.Map{"data": fiber.Map{
				"feature":   key,
				"available": false,
				"notice":    "This feature is not available for your account.",
			}})
		}
		return c.Next()
	}
}

// FallbackMiddleware redirects any request no route claimed to the
// caller's landing route.
func FallbackMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Redirect(access.DefaultLanding(auth.RoleFromContext(c)), fiber.StatusSeeOther)
	}
}
