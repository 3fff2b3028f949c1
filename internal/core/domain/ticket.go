package domain

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketIssued    TicketStatus = "issued"
	TicketCheckedIn TicketStatus = "checked_in"
)

// Ticket is an issued admission credential. Code doubles as the gate
// credential: globally unique, opaque, never derived from the ID.
// Status moves issued -> checked_in exactly once and never back.
type Ticket struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	TicketTypeID uuid.UUID
	OwnerID      uuid.UUID
	OrderID      *uuid.UUID
	Code         string
	Status       TicketStatus
	IssuedAt     time.Time
	CheckedInAt  *time.Time
	CheckedInBy  *uuid.UUID
}

func (t *Ticket) IsCheckedIn() bool {
	return t.Status == TicketCheckedIn
}
