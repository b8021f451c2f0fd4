// Package gateway wraps the external generative-text service. The
// console forwards prompts verbatim and returns the model's text
// verbatim; everything else here is error surface mapping.
package gateway

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spec-kit/console-service/internal/config"
)

// ErrMissingCredential reports that no API key was configured. Calls
// fail locally without touching the network.
var ErrMissingCredential = errors.New("generative-text API key is not configured")

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini API with a fixed model identifier.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the client. A missing API key is tolerated at
// startup so the rest of the console stays usable; every generate call
// then fails with ErrMissingCredential.
func NewGeminiClient(ctx context.Context, cfg config.GatewayConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		logger.Warn("gateway API key missing; generative-text surface disabled")
		return &GeminiClient{model: cfg.Model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

// Generate forwards the prompt and returns the response text verbatim.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrMissingCredential
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Category buckets upstream failures into the console's user-facing
// error surfaces.
type Category int

const (
	CategoryMissingCredential Category = iota
	CategoryInvalidCredential
	CategoryUpstreamFailure
)

// Classify maps a generate error onto its category.
func Classify(err error) Category {
	if errors.Is(err, ErrMissingCredential) {
		return CategoryMissingCredential
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return CategoryInvalidCredential
		}
	}
	return CategoryUpstreamFailure
}
