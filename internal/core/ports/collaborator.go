package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

// CodeGenerator produces opaque admission credentials from a
// cryptographically secure source.
type CodeGenerator interface {
	NewCode() (string, error)
}

// Notifier delivers best-effort buyer notifications through the
// platform's messaging pipeline. Callers treat failures as log-only.
type Notifier interface {
	TicketsIssued(ctx context.Context, buyerID, eventID uuid.UUID, count int) error
	OrderPaid(ctx context.Context, order *domain.Order) error
}
