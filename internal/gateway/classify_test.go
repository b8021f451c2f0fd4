package gateway

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestClassify_MissingCredential(t *testing.T) {
	if got := Classify(ErrMissingCredential); got != CategoryMissingCredential {
		t.Fatalf("expected missing-credential category, got %d", got)
	}
	wrapped := fmt.Errorf("generate: %w", ErrMissingCredential)
	if got := Classify(wrapped); got != CategoryMissingCredential {
		t.Fatalf("wrapped: expected missing-credential category, got %d", got)
	}
}

func TestClassify_RejectedCredential(t *testing.T) {
	for _, code := range []int{401, 403} {
		err := fmt.Errorf("call failed: %w", genai.APIError{Code: code, Message: "credential rejected"})
		if got := Classify(err); got != CategoryInvalidCredential {
			t.Fatalf("code %d: expected invalid-credential category, got %d", code, got)
		}
	}
}

func TestClassify_OtherAPIErrorsAreUpstreamFailures(t *testing.T) {
	for _, code := range []int{400, 429, 500, 503} {
		err := genai.APIError{Code: code, Message: "upstream trouble"}
		if got := Classify(err); got != CategoryUpstreamFailure {
			t.Fatalf("code %d: expected upstream-failure category, got %d", code, got)
		}
	}
}

func TestClassify_PlainError(t *testing.T) {
	if got := Classify(errors.New("connection reset")); got != CategoryUpstreamFailure {
		t.Fatalf("expected upstream-failure category, got %d", got)
	}
}
