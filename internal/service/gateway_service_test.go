package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/spec-kit/console-service/internal/gateway"
)

func newGatewayService(generator *fakeGenerator) (*GatewayService, *SessionService) {
	session := NewSessionService(newFakeSessionRepo(), testLogger())
	return NewGatewayService(generator, session, 5*time.Second, testLogger()), session
}

func TestGenerate_PassthroughVerbatim(t *testing.T) {
	generator := &fakeGenerator{response: "model output"}
	svc, session := newGatewayService(generator)

	text, err := svc.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "model output" {
		t.Fatalf("response altered: %q", text)
	}
	if generator.lastSeen != "hello" {
		t.Fatalf("prompt altered: %q", generator.lastSeen)
	}
	if session.Snapshot().Busy {
		t.Fatalf("busy flag not released after completion")
	}
}

func TestGenerate_EmptyPromptNeverCallsUpstream(t *testing.T) {
	generator := &fakeGenerator{response: "unused"}
	svc, _ := newGatewayService(generator)

	_, err := svc.Generate(context.Background(), "   \n\t ")
	if domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if generator.calls != 0 {
		t.Fatalf("blank prompt reached the generator %d times", generator.calls)
	}
}

func TestGenerate_BusyRejectsConcurrentSubmission(t *testing.T) {
	generator := &fakeGenerator{response: "ok"}
	svc, session := newGatewayService(generator)

	if !session.TryAcquireBusy() {
		t.Fatalf("could not take busy flag")
	}
	_, err := svc.Generate(context.Background(), "second prompt")
	if domainCode(err) != "BUSY" {
		t.Fatalf("expected BUSY, got %v", err)
	}
	if generator.calls != 0 {
		t.Fatalf("busy submission reached the generator")
	}
	session.ReleaseBusy()

	if _, err := svc.Generate(context.Background(), "after release"); err != nil {
		t.Fatalf("generate after release: %v", err)
	}
}

func TestGenerate_MissingCredential(t *testing.T) {
	generator := &fakeGenerator{err: gateway.ErrMissingCredential}
	svc, _ := newGatewayService(generator)

	_, err := svc.Generate(context.Background(), "prompt")
	if domainCode(err) != "UPSTREAM_MISCONFIGURED" {
		t.Fatalf("expected UPSTREAM_MISCONFIGURED, got %v", err)
	}
}

func TestGenerate_RejectedCredential(t *testing.T) {
	generator := &fakeGenerator{err: fmt.Errorf("call failed: %w", genai.APIError{Code: 401, Message: "API key not valid"})}
	svc, _ := newGatewayService(generator)

	_, err := svc.Generate(context.Background(), "prompt")
	if domainCode(err) != "UPSTREAM_UNAUTHORIZED" {
		t.Fatalf("expected UPSTREAM_UNAUTHORIZED, got %v", err)
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("connection reset")}
	svc, session := newGatewayService(generator)

	_, err := svc.Generate(context.Background(), "prompt")
	if domainCode(err) != "UPSTREAM_FAILED" {
		t.Fatalf("expected UPSTREAM_FAILED, got %v", err)
	}
	if session.Snapshot().Busy {
		t.Fatalf("busy flag stuck after failure")
	}
}

func TestGenerate_CallerCancellationDiscardsResponse(t *testing.T) {
	generator := &fakeGenerator{response: "late response"}
	svc, _ := newGatewayService(generator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
