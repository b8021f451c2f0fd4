// Package repository provides the console's stores. Business data is
// mocked by scope: client accounts, tickets and audience records live in
// seeded in-memory stores. The only durable store is the Redis-backed
// session key-value repository.
package repository

import "errors"

// ErrNotFound is returned when a store has no row for the given id.
var ErrNotFound = errors.New("not found")
