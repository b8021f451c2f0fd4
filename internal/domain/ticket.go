package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets. Any
// transition among the three states is permitted, including to the
// current state.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusProcessing TicketStatus = "PROCESSING"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is one of the defined states.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusProcessing, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// SupportTicket is created by a client submission; only its status is
// mutable afterwards, and only by an administrator. Tickets are never
// deleted.
type SupportTicket struct {
	ID         string
	ClientID   string
	ClientName string
	Subject    string
	Message    string
	Status     TicketStatus
	CreatedAt  time.Time
}
