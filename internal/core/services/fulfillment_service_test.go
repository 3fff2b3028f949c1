package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports/mocks"
	"github.com/openpass/ticketing/internal/core/services"
)

type fulfillmentFixture struct {
	events   *mocks.EventRepository
	orders   *mocks.OrderRepository
	codes    *mocks.CodeGenerator
	notifier *mocks.Notifier
	svc      *services.FulfillmentService
}

func newFulfillmentFixture(t *testing.T) *fulfillmentFixture {
	f := &fulfillmentFixture{
		events:   mocks.NewEventRepository(t),
		orders:   mocks.NewOrderRepository(t),
		codes:    mocks.NewCodeGenerator(t),
		notifier: mocks.NewNotifier(t),
	}
	f.svc = services.NewFulfillmentService(f.events, f.orders, f.codes, f.notifier)
	return f
}

func pendingOrder(eventID uuid.UUID, qty int) *domain.Order {
	return &domain.Order{
		ID:           uuid.New(),
		EventID:      eventID,
		TicketTypeID: uuid.New(),
		BuyerID:      uuid.New(),
		Quantity:     qty,
		TotalCents:   int64(qty) * 50000,
		Currency:     "USD",
		Status:       domain.OrderPending,
		CreatedAt:    time.Now(),
	}
}

func TestMarkPaid_IssuesTicketsOnce(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	order := pendingOrder(eventID, 3)

	now := time.Now()
	paid := *order
	paid.Status = domain.OrderPaid
	paid.PaidAt = &now

	tickets := []domain.Ticket{
		{ID: uuid.New(), OrderID: &order.ID, OwnerID: order.BuyerID, Status: domain.TicketIssued},
		{ID: uuid.New(), OrderID: &order.ID, OwnerID: order.BuyerID, Status: domain.TicketIssued},
		{ID: uuid.New(), OrderID: &order.ID, OwnerID: order.BuyerID, Status: domain.TicketIssued},
	}

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.codes.On("NewCode").Return("EEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEE", nil).Times(3)
	f.orders.On("MarkPaidAndIssue", ctx, order.ID, mock.AnythingOfType("[]string")).Return(&paid, tickets, nil)
	f.notifier.On("OrderPaid", mock.Anything, &paid).Return(nil).Maybe()

	gotOrder, gotTickets, err := f.svc.MarkPaid(ctx, eventID, order.ID, organizerID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, gotOrder.Status)
	assert.Len(t, gotTickets, 3)
}

func TestMarkPaid_Forbidden(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	order := pendingOrder(eventID, 1)

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)

	gotOrder, gotTickets, err := f.svc.MarkPaid(ctx, eventID, order.ID, uuid.New())

	assert.Nil(t, gotOrder)
	assert.Nil(t, gotTickets)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}

func TestMarkPaid_SecondCallConflicts(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	order := pendingOrder(eventID, 2)
	now := time.Now()
	order.Status = domain.OrderPaid
	order.PaidAt = &now

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)

	gotOrder, gotTickets, err := f.svc.MarkPaid(ctx, eventID, order.ID, organizerID)

	assert.Nil(t, gotOrder)
	assert.Nil(t, gotTickets)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	f.orders.AssertNotCalled(t, "MarkPaidAndIssue", mock.Anything, mock.Anything, mock.Anything)
}

// A stale read can still see the order pending; the conditional update
// inside the repository is the final arbiter.
func TestMarkPaid_LosesRaceToConcurrentCall(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	order := pendingOrder(eventID, 1)

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.codes.On("NewCode").Return("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", nil).Once()
	f.orders.On("MarkPaidAndIssue", ctx, order.ID, mock.AnythingOfType("[]string")).
		Return(nil, nil, domain.Conflict("order is not pending"))

	gotOrder, gotTickets, err := f.svc.MarkPaid(ctx, eventID, order.ID, organizerID)

	assert.Nil(t, gotOrder)
	assert.Nil(t, gotTickets)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestMarkPaid_OrderFromAnotherEvent(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New(), 1)

	f.orders.On("GetByID", ctx, order.ID).Return(order, nil)

	gotOrder, gotTickets, err := f.svc.MarkPaid(ctx, uuid.New(), order.ID, uuid.New())

	assert.Nil(t, gotOrder)
	assert.Nil(t, gotTickets)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListPending(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	expected := []domain.Order{*pendingOrder(eventID, 2)}

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.orders.On("ListByEventAndStatus", ctx, eventID, domain.OrderPending).Return(expected, nil)

	orders, err := f.svc.ListPending(ctx, eventID, organizerID)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestListPending_Forbidden(t *testing.T) {
	f := newFulfillmentFixture(t)

	ctx := context.Background()
	eventID := uuid.New()

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)

	orders, err := f.svc.ListPending(ctx, eventID, uuid.New())

	assert.Nil(t, orders)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}
