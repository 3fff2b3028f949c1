package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports/mocks"
	"github.com/openpass/ticketing/internal/core/services"
)

func intPtr(v int) *int {
	return &v
}

type issuanceFixture struct {
	types    *mocks.TicketTypeRepository
	issuance *mocks.IssuanceRepository
	tickets  *mocks.TicketRepository
	codes    *mocks.CodeGenerator
	notifier *mocks.Notifier
	redis    redismock.ClientMock
	svc      *services.IssuanceService
}

func newIssuanceFixture(t *testing.T) *issuanceFixture {
	f := &issuanceFixture{
		types:    mocks.NewTicketTypeRepository(t),
		issuance: mocks.NewIssuanceRepository(t),
		tickets:  mocks.NewTicketRepository(t),
		codes:    mocks.NewCodeGenerator(t),
		notifier: mocks.NewNotifier(t),
	}

	client, redisMock := redismock.NewClientMock()
	f.redis = redisMock
	f.svc = services.NewIssuanceService(f.types, f.issuance, f.tickets, f.codes, f.notifier, client)

	return f
}

func freeType(eventID uuid.UUID, total *int) *domain.TicketType {
	return &domain.TicketType{
		ID:            uuid.New(),
		EventID:       eventID,
		Name:          "General Admission",
		PaymentMode:   domain.PaymentModeFree,
		PriceCents:    0,
		Currency:      "USD",
		QuantityTotal: total,
		IsActive:      true,
	}
}

func TestCheckout_FreeType_IssuesDistinctTickets(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()
	tt := freeType(eventID, intPtr(100))

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil)
	f.codes.On("NewCode").Return("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", nil).Once()
	f.codes.On("NewCode").Return("BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB", nil).Once()
	f.issuance.On("IssueInstant", ctx, tt.ID, buyerID, []string{"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"}).
		Return([]domain.Ticket{
			{ID: uuid.New(), EventID: eventID, TicketTypeID: tt.ID, OwnerID: buyerID, Code: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", Status: domain.TicketIssued},
			{ID: uuid.New(), EventID: eventID, TicketTypeID: tt.ID, OwnerID: buyerID, Code: "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB", Status: domain.TicketIssued},
		}, nil)
	f.notifier.On("TicketsIssued", mock.Anything, buyerID, eventID, 2).Return(nil).Maybe()
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	result, err := f.svc.Checkout(ctx, eventID, buyerID, services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 2})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Nil(t, result.Order)
		assert.Len(t, result.Tickets, 2)
		assert.NotEqual(t, result.Tickets[0].Code, result.Tickets[1].Code)
		assert.Equal(t, domain.TicketIssued, result.Tickets[0].Status)
		assert.Equal(t, domain.TicketIssued, result.Tickets[1].Status)
	}

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestCheckout_QuantityOutOfRange(t *testing.T) {
	f := newIssuanceFixture(t)

	for _, qty := range []int{0, -3, services.MaxCheckoutQuantity + 1} {
		result, err := f.svc.Checkout(context.Background(), uuid.New(), uuid.New(), services.CheckoutRequest{TicketTypeID: uuid.New(), Quantity: qty})

		assert.Nil(t, result)
		assert.True(t, domain.IsKind(err, domain.KindValidation), "qty %d should be rejected", qty)
		assert.ErrorContains(t, err, fmt.Sprintf("between 1 and %d", services.MaxCheckoutQuantity))
	}
}

func TestCheckout_TypeNotFound(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	typeID := uuid.New()

	f.types.On("GetByID", ctx, typeID).Return(nil, domain.NotFound("ticket type not found"))

	result, err := f.svc.Checkout(ctx, uuid.New(), uuid.New(), services.CheckoutRequest{TicketTypeID: typeID, Quantity: 1})

	assert.Nil(t, result)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCheckout_TypeFromAnotherEvent(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	tt := freeType(uuid.New(), nil)

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil)

	result, err := f.svc.Checkout(ctx, uuid.New(), uuid.New(), services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 1})

	assert.Nil(t, result)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCheckout_InactiveTypeBlocked(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	tt := freeType(eventID, intPtr(100))
	tt.QuantitySold = 5
	tt.IsActive = false

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil)

	result, err := f.svc.Checkout(ctx, eventID, uuid.New(), services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 1})

	assert.Nil(t, result)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestCheckout_LastTicketRace(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	winner := uuid.New()
	loser := uuid.New()
	tt := freeType(eventID, intPtr(1))

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil).Twice()
	f.codes.On("NewCode").Return("CCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC", nil).Times(2)
	f.issuance.On("IssueInstant", ctx, tt.ID, winner, mock.Anything).
		Return([]domain.Ticket{{ID: uuid.New(), OwnerID: winner, Status: domain.TicketIssued}}, nil).Once()
	// The second transaction finds the capacity gone and must leave no side effects.
	f.issuance.On("IssueInstant", ctx, tt.ID, loser, mock.Anything).
		Return(nil, domain.CapacityExceeded("not enough tickets remaining")).Once()
	f.notifier.On("TicketsIssued", mock.Anything, winner, eventID, 1).Return(nil).Maybe()
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	won, err := f.svc.Checkout(ctx, eventID, winner, services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 1})
	assert.NoError(t, err)
	assert.Len(t, won.Tickets, 1)

	lost, err := f.svc.Checkout(ctx, eventID, loser, services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 1})
	assert.Nil(t, lost)
	assert.True(t, domain.IsKind(err, domain.KindCapacityExceeded))

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestCheckout_ManualType_CreatesPendingOrder(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()
	tt := freeType(eventID, nil)
	tt.PaymentMode = domain.PaymentModeManual
	tt.PriceCents = 50000

	pending := &domain.Order{
		ID:           uuid.New(),
		EventID:      eventID,
		TicketTypeID: tt.ID,
		BuyerID:      buyerID,
		Quantity:     3,
		TotalCents:   150000,
		Currency:     "USD",
		Status:       domain.OrderPending,
	}

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil)
	f.issuance.On("CreatePendingOrder", ctx, tt.ID, buyerID, 3).Return(pending, nil)
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	result, err := f.svc.Checkout(ctx, eventID, buyerID, services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 3})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Empty(t, result.Tickets)
		if assert.NotNil(t, result.Order) {
			assert.Equal(t, domain.OrderPending, result.Order.Status)
			assert.Equal(t, int64(150000), result.Order.TotalCents)
		}
	}

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestCheckout_RetriesOnDuplicateCode(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()
	tt := freeType(eventID, nil)

	f.types.On("GetByID", ctx, tt.ID).Return(tt, nil)
	f.codes.On("NewCode").Return("DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD", nil).Times(2)
	f.issuance.On("IssueInstant", ctx, tt.ID, buyerID, mock.Anything).
		Return(nil, domain.ErrDuplicateCode).Once()
	f.issuance.On("IssueInstant", ctx, tt.ID, buyerID, mock.Anything).
		Return([]domain.Ticket{{ID: uuid.New(), Status: domain.TicketIssued}}, nil).Once()
	f.notifier.On("TicketsIssued", mock.Anything, buyerID, eventID, 1).Return(nil).Maybe()
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	result, err := f.svc.Checkout(ctx, eventID, buyerID, services.CheckoutRequest{TicketTypeID: tt.ID, Quantity: 1})

	assert.NoError(t, err)
	assert.Len(t, result.Tickets, 1)
}

func TestListMine(t *testing.T) {
	f := newIssuanceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := []domain.Ticket{{ID: uuid.New(), OwnerID: ownerID, Status: domain.TicketIssued}}

	f.tickets.On("ListByOwner", ctx, ownerID).Return(expected, nil)

	tickets, err := f.svc.ListMine(ctx, ownerID)

	assert.NoError(t, err)
	assert.Equal(t, expected, tickets)
}
