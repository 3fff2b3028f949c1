package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
)

// Order is a capacity reservation for a manual-payment ticket type,
// waiting for the organizer to confirm payment. Capacity is already
// reserved when the order is created; an abandoned pending order keeps
// its reservation.
type Order struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	TicketTypeID uuid.UUID
	BuyerID      uuid.UUID
	Quantity     int
	TotalCents   int64
	Currency     string
	Status       OrderStatus
	CreatedAt    time.Time
	PaidAt       *time.Time
}

func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}
