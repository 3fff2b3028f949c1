package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	// PaymentModeFree issues tickets immediately at checkout.
	PaymentModeFree PaymentMode = "free"
	// PaymentModeManual creates a pending order that the organizer
	// confirms out of band (bank transfer, cash, contact).
	PaymentModeManual PaymentMode = "manual"
)

func (m PaymentMode) Valid() bool {
	return m == PaymentModeFree || m == PaymentModeManual
}

// TicketType is a purchasable admission category for an event.
// QuantityTotal == nil means unlimited capacity; QuantitySold is the
// authoritative counter and only ever moves through the issuance
// transaction's guarded increment.
type TicketType struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	Name          string
	PaymentMode   PaymentMode
	PriceCents    int64
	Currency      string
	QuantityTotal *int
	QuantitySold  int
	IsActive      bool
	Description   string
	Contact       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t *TicketType) Unlimited() bool {
	return t.QuantityTotal == nil
}

// Remaining reports how many tickets are still sellable, or nil for
// unlimited types. Never negative, even after the organizer lowered
// QuantityTotal below QuantitySold.
func (t *TicketType) Remaining() *int {
	if t.QuantityTotal == nil {
		return nil
	}

	left := *t.QuantityTotal - t.QuantitySold
	if left < 0 {
		left = 0
	}

	return &left
}

func (t *TicketType) CanSell(qty int) bool {
	if qty <= 0 {
		return false
	}

	if t.QuantityTotal == nil {
		return true
	}

	return t.QuantitySold+qty <= *t.QuantityTotal
}

// ValidateNew checks the fields an organizer supplies when creating a type.
func (t *TicketType) ValidateNew() error {
	if strings.TrimSpace(t.Name) == "" {
		return Invalid("ticket type name must not be empty")
	}

	if !t.PaymentMode.Valid() {
		return Invalid("unknown payment mode")
	}

	if t.PriceCents < 0 {
		return Invalid("price must not be negative")
	}

	if t.QuantityTotal != nil && *t.QuantityTotal < 0 {
		return Invalid("quantity must not be negative")
	}

	if len(t.Currency) != 3 {
		return Invalid("currency must be a 3-letter code")
	}

	return nil
}
