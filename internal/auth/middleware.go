package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the caller's resolved session. An unauthenticated
// caller carries RoleNone; the access gate decides what that may load, so
// the middleware itself never rejects a request.
type Principal struct {
	Role     domain.Role
	ClientID string
}

// Middleware resolves bearer tokens into principals.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle parses the Authorization header when present. A missing or
// invalid token degrades to RoleNone rather than failing, leaving the
// redirect decision to the access gate.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	principal := &Principal{Role: domain.RoleNone}

	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if claims, err := m.tokens.ParseToken(parts[1]); err == nil {
				principal.Role = domain.ParseRole(string(claims.Role))
				principal.ClientID = claims.ClientID
			}
		}
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the resolved principal.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RoleFromContext returns the caller's role, defaulting to RoleNone.
func RoleFromContext(c *fiber.Ctx) domain.Role {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return domain.RoleNone
	}
	return principal.Role
}
