package notifier

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

// Noop stands in when no broker is configured or reachable; issuance
// and fulfillment proceed without buyer notifications.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) TicketsIssued(_ context.Context, _, _ uuid.UUID, _ int) error {
	return nil
}

func (Noop) OrderPaid(_ context.Context, _ *domain.Order) error {
	return nil
}
