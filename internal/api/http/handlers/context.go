package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/auth"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// currentClientID resolves the client account the session acts for. The
// id travels in the session token; resolving it from a real identity
// provider is out of scope.
func currentClientID(c *fiber.Ctx) (string, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.ClientID == "" {
		return "", apperrors.NewUnauthorized("client session required")
	}
	return principal.ClientID, nil
}
