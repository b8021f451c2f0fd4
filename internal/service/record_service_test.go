package service

import (
	"context"
	"testing"

	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/repository"
)

func newRecordService(dispatcher events.Dispatcher) (*RecordService, *ClientService) {
	clients := seededClients()
	records := repository.NewMemoryRecordRepository(repository.SeedRecords())
	return NewRecordService(records, clients, dispatcher, testLogger(), 1),
		NewClientService(clients, nil, testLogger())
}

func TestSearch_WithholdsPhoneNumbers(t *testing.T) {
	svc, _ := newRecordService(nil)

	results, err := svc.Search(context.Background(), "c1", SearchInput{
		Mode:    SearchModeByFilter,
		Country: "Egypt",
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected matches for Egypt")
	}
	for _, r := range results {
		if r.PhoneNumber != "" {
			t.Fatalf("phone number leaked before purchase: %+v", r)
		}
	}
}

func TestSearch_ByIdentifierRequiresTerm(t *testing.T) {
	svc, _ := newRecordService(nil)

	_, err := svc.Search(context.Background(), "c1", SearchInput{Mode: SearchModeByIdentifier, Term: "  "})
	if domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestSearch_UnknownMode(t *testing.T) {
	svc, _ := newRecordService(nil)

	_, err := svc.Search(context.Background(), "c1", SearchInput{Mode: "by_magic"})
	if domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestPurchase_CostAndReveal(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc, clientSvc := newRecordService(dispatcher)
	ctx := context.Background()

	before, _ := clientSvc.Get(ctx, "c1")

	result, err := svc.Purchase(ctx, "c1", []string{"fb1", "fb2", "fb1"})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if result.Cost != 2 {
		t.Fatalf("duplicate ids must be charged once: cost %d", result.Cost)
	}
	if result.Balance != before.Points-2 {
		t.Fatalf("balance %d, want %d", result.Balance, before.Points-2)
	}
	for _, r := range result.Records {
		if r.PhoneNumber == "" {
			t.Fatalf("purchased record missing phone number: %+v", r)
		}
	}
	if len(dispatcher.ofType(events.EventRecordsPurchased)) != 1 {
		t.Fatalf("expected records_purchased event")
	}

	// Purchased records keep their phone numbers in later searches,
	// unpurchased ones stay masked.
	results, err := svc.Search(ctx, "c1", SearchInput{Mode: SearchModeByFilter})
	if err != nil {
		t.Fatalf("search after purchase: %v", err)
	}
	for _, r := range results {
		purchased := r.ID == "fb1" || r.ID == "fb2"
		if purchased && r.PhoneNumber == "" {
			t.Fatalf("purchased record %s masked", r.ID)
		}
		if !purchased && r.PhoneNumber != "" {
			t.Fatalf("unpurchased record %s revealed", r.ID)
		}
	}
}

func TestPurchase_InsufficientPointsIsNoOp(t *testing.T) {
	svc, clientSvc := newRecordService(nil)
	ctx := context.Background()

	// Drain the balance below the price of a single record.
	if _, err := clientSvc.AdjustPoints(ctx, "c1", -1500); err != nil {
		t.Fatalf("drain: %v", err)
	}

	_, err := svc.Purchase(ctx, "c1", []string{"fb3"})
	if domainCode(err) != "INSUFFICIENT_POINTS" {
		t.Fatalf("expected INSUFFICIENT_POINTS, got %v", err)
	}

	account, _ := clientSvc.Get(ctx, "c1")
	if account.Points != 0 {
		t.Fatalf("rejected purchase mutated balance: %d", account.Points)
	}
	results, _ := svc.Search(ctx, "c1", SearchInput{Mode: SearchModeByIdentifier, Term: "fb3"})
	if len(results) != 1 || results[0].PhoneNumber != "" {
		t.Fatalf("rejected purchase revealed the record: %+v", results)
	}
}

func TestPurchase_UnknownRecord(t *testing.T) {
	svc, _ := newRecordService(nil)

	_, err := svc.Purchase(context.Background(), "c1", []string{"fb999"})
	if domainCode(err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestPurchase_EmptySelection(t *testing.T) {
	svc, _ := newRecordService(nil)

	_, err := svc.Purchase(context.Background(), "c1", []string{" ", ""})
	if domainCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}
