package service

import (
	"context"
	"testing"

	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/repository"
)

func TestRehydrate_RestoresStoredValues(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.values[repository.SessionKeyRole] = "client"
	repo.values[repository.SessionKeyLanguage] = "ar"
	repo.values[repository.SessionKeyTheme] = "dark"

	svc := NewSessionService(repo, testLogger())
	if err := svc.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	state := svc.Snapshot()
	if state.Role != domain.RoleClient || state.Language != domain.LanguageArabic || state.Theme != domain.ThemeDark {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestRehydrate_InvalidValuesFallBackToDefaults(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.values[repository.SessionKeyRole] = "superuser"
	repo.values[repository.SessionKeyLanguage] = "fr"
	repo.values[repository.SessionKeyTheme] = "sepia"

	svc := NewSessionService(repo, testLogger())
	if err := svc.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	state := svc.Snapshot()
	if state.Role != domain.RoleNone {
		t.Fatalf("invalid role should map to none, got %s", state.Role)
	}
	if state.Language != domain.DefaultLanguage {
		t.Fatalf("invalid language should map to default, got %s", state.Language)
	}
	if state.Theme != domain.DefaultTheme {
		t.Fatalf("invalid theme should map to default, got %s", state.Theme)
	}
}

func TestSetLanguage_Validation(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), testLogger())
	ctx := context.Background()

	if _, err := svc.SetLanguage(ctx, "de"); domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	lang, err := svc.SetLanguage(ctx, "ar")
	if err != nil || lang != domain.LanguageArabic {
		t.Fatalf("set ar: lang=%s err=%v", lang, err)
	}
	if svc.Snapshot().Language != domain.LanguageArabic {
		t.Fatalf("language not applied")
	}
}

func TestSetTheme_Validation(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), testLogger())
	ctx := context.Background()

	if _, err := svc.SetTheme(ctx, "neon"); domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if _, err := svc.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("set dark: %v", err)
	}
	if svc.Snapshot().Theme != domain.ThemeDark {
		t.Fatalf("theme not applied")
	}
}

func TestMutations_SurviveStoreFailure(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, testLogger())
	ctx := context.Background()

	repo.fail = true
	if _, err := svc.SetLanguage(ctx, "ar"); err != nil {
		t.Fatalf("persist failure must not fail mutation: %v", err)
	}
	svc.SetRole(ctx, domain.RoleAdmin)

	state := svc.Snapshot()
	if state.Language != domain.LanguageArabic || state.Role != domain.RoleAdmin {
		t.Fatalf("memory state lost on store failure: %+v", state)
	}
}

func TestBusyFlag_SingleHolder(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), testLogger())

	if !svc.TryAcquireBusy() {
		t.Fatalf("first acquire failed")
	}
	if svc.TryAcquireBusy() {
		t.Fatalf("second acquire should fail while held")
	}
	if !svc.Snapshot().Busy {
		t.Fatalf("snapshot should report busy")
	}
	svc.ReleaseBusy()
	if !svc.TryAcquireBusy() {
		t.Fatalf("acquire after release failed")
	}
}
