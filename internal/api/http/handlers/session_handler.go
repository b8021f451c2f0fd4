package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/access"
	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// SessionHandler serves login, logout and the session state endpoints.
type SessionHandler struct {
	credentials *auth.CredentialTable
	tokens      *auth.TokenManager
	session     *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(credentials *auth.CredentialTable, tokens *auth.TokenManager, session *service.SessionService) *SessionHandler {
	return &SessionHandler{credentials: credentials, tokens: tokens, session: session}
}

// Login POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	cred, ok := h.credentials.Verify(req.Email, req.Password)
	if !ok {
		return apperrors.NewUnauthorized("invalid email or password")
	}

	token, expiresAt, err := h.tokens.GenerateToken(cred.Role, cred.ClientID)
	if err != nil {
		return err
	}
	h.session.SetRole(c.Context(), cred.Role)

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		Role:      cred.Role,
		Landing:   access.DefaultLanding(cred.Role),
		ExpiresAt: expiresAt,
	}})
}

// Logout POST /auth/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.session.SetRole(c.Context(), domain.RoleNone)
	return c.Status(http.StatusNoContent).Send(nil)
}

// GetSession GET /session.
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	state := h.session.Snapshot()
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Role:     state.Role,
		Language: state.Language,
		Theme:    state.Theme,
		Busy:     state.Busy,
	}})
}

// SetLanguage PUT /session/language.
func (h *SessionHandler) SetLanguage(c *fiber.Ctx) error {
	var req dto.SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	language, err := h.session.SetLanguage(c.Context(), req.Language)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"language": language}})
}

// SetTheme PUT /session/theme.
func (h *SessionHandler) SetTheme(c *fiber.Ctx) error {
	var req dto.SetThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	theme, err := h.session.SetTheme(c.Context(), req.Theme)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"theme": theme}})
}
