package observability

import (
	"strconv"
	"sync"
	"time"
)

// RouteStats aggregates observations for one route and method.
type RouteStats struct {
	Requests      int64
	TotalDuration time.Duration
}

// Metrics keeps in-memory request and error counters per route. The
// console has no metrics backend by scope, so counters live here and are
// read through Snapshot.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]RouteStats
	errors   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]RouteStats),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts a completed request against its route, method and
// status, accumulating the handling duration.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.requests[key]
	stats.Requests++
	stats.TotalDuration += duration
	m.requests[key] = stats
}

// RecordError counts a request that surfaced a domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}

// Snapshot returns copies of the current counters.
func (m *Metrics) Snapshot() (map[string]RouteStats, map[string]int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	requests := make(map[string]RouteStats, len(m.requests))
	for k, v := range m.requests {
		requests[k] = v
	}
	errors := make(map[string]int64, len(m.errors))
	for k, v := range m.errors {
		errors[k] = v
	}
	return requests, errors
}
