package service

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// SessionService owns the single process-wide session. Role, language
// and theme write through to the durable key-value store; persistence
// failures are logged and do not fail the mutation, so the in-memory
// session stays authoritative while the store is unreachable.
type SessionService struct {
	repo   repository.SessionRepository
	logger *zap.Logger

	mu    sync.RWMutex
	state domain.SessionState
	busy  atomic.Bool
}

// NewSessionService builds the service with default state.
func NewSessionService(repo repository.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		logger: logger,
		state: domain.SessionState{
			Role:     domain.RoleNone,
			Language: domain.DefaultLanguage,
			Theme:    domain.DefaultTheme,
		},
	}
}

// Rehydrate loads the persisted session keys, validating each against
// its legal values. Invalid or missing values fall back to defaults.
func (s *SessionService) Rehydrate(ctx context.Context) error {
	roleVal, err := s.repo.Get(ctx, repository.SessionKeyRole)
	if err != nil {
		return err
	}
	langVal, err := s.repo.Get(ctx, repository.SessionKeyLanguage)
	if err != nil {
		return err
	}
	themeVal, err := s.repo.Get(ctx, repository.SessionKeyTheme)
	if err != nil {
		return err
	}

	language, ok := domain.ParseLanguage(langVal)
	if !ok && langVal != "" {
		s.logger.Warn("stored language invalid, using default", zap.String("value", langVal))
	}
	theme, ok := domain.ParseTheme(themeVal)
	if !ok && themeVal != "" {
		s.logger.Warn("stored theme invalid, using default", zap.String("value", themeVal))
	}

	s.mu.Lock()
	s.state.Role = domain.ParseRole(roleVal)
	s.state.Language = language
	s.state.Theme = theme
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current session state.
func (s *SessionService) Snapshot() domain.SessionState {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	state.Busy = s.busy.Load()
	return state
}

// SetRole records and persists the active role.
func (s *SessionService) SetRole(ctx context.Context, role domain.Role) {
	s.mu.Lock()
	s.state.Role = role
	s.mu.Unlock()
	s.persist(ctx, repository.SessionKeyRole, string(role))
}

// SetLanguage validates and persists the language.
func (s *SessionService) SetLanguage(ctx context.Context, value string) (domain.Language, error) {
	language, ok := domain.ParseLanguage(value)
	if !ok {
		return "", apperrors.NewValidationError("language must be one of: en, ar", nil)
	}
	s.mu.Lock()
	s.state.Language = language
	s.mu.Unlock()
	s.persist(ctx, repository.SessionKeyLanguage, string(language))
	return language, nil
}

// SetTheme validates and persists the theme.
func (s *SessionService) SetTheme(ctx context.Context, value string) (domain.Theme, error) {
	theme, ok := domain.ParseTheme(value)
	if !ok {
		return "", apperrors.NewValidationError("theme must be one of: light, dark", nil)
	}
	s.mu.Lock()
	s.state.Theme = theme
	s.mu.Unlock()
	s.persist(ctx, repository.SessionKeyTheme, string(theme))
	return theme, nil
}

// TryAcquireBusy flips the busy flag on, reporting false when a previous
// submission is still in flight. One outstanding prompt at a time.
func (s *SessionService) TryAcquireBusy() bool {
	return s.busy.CompareAndSwap(false, true)
}

// ReleaseBusy clears the busy flag.
func (s *SessionService) ReleaseBusy() {
	s.busy.Store(false)
}

func (s *SessionService) persist(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.logger.Warn("session persist failed", zap.String("key", key), zap.Error(err))
	}
}
