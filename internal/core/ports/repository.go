package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

type EventRepository interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
}

type TicketTypeRepository interface {
	Create(ctx context.Context, tt *domain.TicketType) error
	Update(ctx context.Context, tt *domain.TicketType) error
	GetByID(ctx context.Context, typeID uuid.UUID) (*domain.TicketType, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, activeOnly bool) ([]domain.TicketType, error)
}

// IssuanceRepository runs the checkout write path. Both methods execute
// in a single transaction that locks the ticket type row, re-checks
// availability and capacity, increments quantity_sold and creates the
// resulting rows; on any failure the reservation rolls back with it.
type IssuanceRepository interface {
	// IssueInstant reserves capacity and creates len(codes) issued
	// tickets for a free type.
	IssueInstant(ctx context.Context, typeID, buyerID uuid.UUID, codes []string) ([]domain.Ticket, error)
	// CreatePendingOrder reserves capacity and creates one pending
	// order for a manual-payment type, priced from the locked row.
	CreatePendingOrder(ctx context.Context, typeID, buyerID uuid.UUID, qty int) (*domain.Order, error)
}

// OrderRepository covers the fulfillment side. MarkPaidAndIssue flips a
// pending order to paid and creates its tickets in one transaction; the
// status flip is a conditional update, so a concurrent or repeated call
// loses with domain.KindConflict and writes nothing.
type OrderRepository interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListByEventAndStatus(ctx context.Context, eventID uuid.UUID, status domain.OrderStatus) ([]domain.Order, error)
	MarkPaidAndIssue(ctx context.Context, orderID uuid.UUID, codes []string) (*domain.Order, []domain.Ticket, error)
}

type TicketRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Ticket, error)
	// GetByCode is scoped to the event so a code never leaks whether it
	// belongs to a different event.
	GetByCode(ctx context.Context, eventID uuid.UUID, code string) (*domain.Ticket, error)
	// CheckIn performs the guarded transition issued -> checked_in.
	// updated == false means the ticket was no longer in issued status.
	CheckIn(ctx context.Context, ticketID, staffID uuid.UUID) (ticket *domain.Ticket, updated bool, err error)
}
