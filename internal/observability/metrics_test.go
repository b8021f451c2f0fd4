package observability

import (
	"testing"
	"time"
)

func TestMetrics_CountsRequestsAndErrors(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/client/dashboard", "GET", 200, 3*time.Millisecond)
	m.RecordRequest("/client/dashboard", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/auth/login", "POST", 401, time.Millisecond)
	m.RecordError("/auth/login", "POST", "UNAUTHORIZED")

	requests, errors := m.Snapshot()

	stats := requests["/client/dashboard|GET|200"]
	if stats.Requests != 2 {
		t.Fatalf("expected 2 requests, got %d", stats.Requests)
	}
	if stats.TotalDuration != 8*time.Millisecond {
		t.Fatalf("expected 8ms accumulated, got %v", stats.TotalDuration)
	}
	if errors["/auth/login|POST|UNAUTHORIZED"] != 1 {
		t.Fatalf("error counter missing: %v", errors)
	}
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
}
