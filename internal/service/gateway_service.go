package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/gateway"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// GatewayService fronts the generative-text passthrough. It validates the
// prompt locally before any network call, holds the session busy flag for
// the duration of the call, and maps upstream failures onto the four
// user-facing error surfaces.
type GatewayService struct {
	generator gateway.TextGenerator
	session   *SessionService
	timeout   time.Duration
	logger    *zap.Logger
}

// NewGatewayService constructs the service.
func NewGatewayService(generator gateway.TextGenerator, session *SessionService, timeout time.Duration, logger *zap.Logger) *GatewayService {
	return &GatewayService{generator: generator, session: session, timeout: timeout, logger: logger}
}

// Generate forwards the prompt and returns the model's response verbatim.
// An empty or whitespace-only prompt is rejected before the busy flag is
// taken or the network is touched. While a prompt is in flight, further
// submissions are rejected rather than queued.
func (s *GatewayService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperrors.NewValidationError("prompt must not be empty", nil)
	}

	if !s.session.TryAcquireBusy() {
		return "", apperrors.NewBusy("a prompt is already being processed")
	}
	defer s.session.ReleaseBusy()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(callCtx, prompt)

	// The caller navigating away cancels the request context; the
	// response is discarded rather than surfaced against stale state.
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", s.mapError(err)
	}
	return text, nil
}

func (s *GatewayService) mapError(err error) error {
	switch gateway.Classify(err) {
	case gateway.CategoryMissingCredential:
		return apperrors.NewUpstreamMisconfigured("AI service is not configured; please contact support")
	case gateway.CategoryInvalidCredential:
		return apperrors.NewUpstreamUnauthorized("AI service rejected the configured credential")
	default:
		s.logger.Warn("generative-text call failed", zap.Error(err))
		return apperrors.NewUpstreamFailure("could not generate a response; please try again later", err)
	}
}
