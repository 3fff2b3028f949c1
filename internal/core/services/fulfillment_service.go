package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports"
	"github.com/openpass/ticketing/internal/monitoring"
)

type FulfillmentService struct {
	events   ports.EventRepository
	orders   ports.OrderRepository
	codes    ports.CodeGenerator
	notifier ports.Notifier
}

func NewFulfillmentService(
	events ports.EventRepository,
	orders ports.OrderRepository,
	codes ports.CodeGenerator,
	notifier ports.Notifier,
) *FulfillmentService {
	return &FulfillmentService{
		events:   events,
		orders:   orders,
		codes:    codes,
		notifier: notifier,
	}
}

// MarkPaid records the organizer's payment confirmation and materializes
// the order's tickets exactly once. A repeated or concurrent call finds
// the order no longer pending and gets KindConflict with zero writes,
// so the endpoint is safe against double-clicks and retries.
func (s *FulfillmentService) MarkPaid(ctx context.Context, eventID, orderID, organizerID uuid.UUID) (*domain.Order, []domain.Ticket, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if order.EventID != eventID {
		return nil, nil, domain.NotFound("order not found for this event")
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	if !event.IsCreator(organizerID) {
		return nil, nil, domain.Forbidden("only the event creator can confirm payment")
	}

	if !order.IsPending() {
		return nil, nil, domain.Conflict("order is not pending")
	}

	var (
		paid    *domain.Order
		tickets []domain.Ticket
	)

	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		codes, err := s.newCodes(order.Quantity)
		if err != nil {
			return nil, nil, err
		}

		paid, tickets, err = s.orders.MarkPaidAndIssue(ctx, orderID, codes)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			slog.Warn("ticket code collision, retrying", "order_id", orderID, "attempt", attempt+1)
			paid = nil
			continue
		}
		return nil, nil, err
	}

	if paid == nil {
		return nil, nil, domain.Internal("could not generate unique ticket codes")
	}

	monitoring.OrderPaid()
	monitoring.TicketsIssued(string(domain.PaymentModeManual), len(tickets))
	s.notifyPaid(paid)

	return paid, tickets, nil
}

func (s *FulfillmentService) ListPending(ctx context.Context, eventID, organizerID uuid.UUID) ([]domain.Order, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsCreator(organizerID) {
		return nil, domain.Forbidden("only the event creator can view orders")
	}

	return s.orders.ListByEventAndStatus(ctx, eventID, domain.OrderPending)
}

func (s *FulfillmentService) newCodes(n int) ([]string, error) {
	codes := make([]string, n)
	for i := range codes {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, domain.Internal("could not generate ticket code")
		}
		codes[i] = code
	}
	return codes, nil
}

// notifyPaid runs after the fulfillment transaction committed; a broker
// failure is logged and never rolls back issuance.
func (s *FulfillmentService) notifyPaid(order *domain.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.OrderPaid(ctx, order); err != nil {
			slog.Warn("order paid notification failed", "order_id", order.ID, "error", err)
		}
	}()
}
