package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports/mocks"
	"github.com/openpass/ticketing/internal/core/services"
)

type catalogFixture struct {
	events *mocks.EventRepository
	types  *mocks.TicketTypeRepository
	redis  redismock.ClientMock
	svc    *services.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	f := &catalogFixture{
		events: mocks.NewEventRepository(t),
		types:  mocks.NewTicketTypeRepository(t),
	}

	client, redisMock := redismock.NewClientMock()
	f.redis = redisMock
	f.svc = services.NewCatalogService(f.events, f.types, client)

	return f
}

func TestCreateTicketType(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.types.On("Create", ctx, mock.AnythingOfType("*domain.TicketType")).Return(nil)
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	tt, err := f.svc.Create(ctx, eventID, organizerID, services.CreateTicketTypeInput{
		Name:          "Early Bird",
		PaymentMode:   domain.PaymentModeManual,
		PriceCents:    25000,
		Currency:      "usd",
		QuantityTotal: intPtr(200),
	})

	assert.NoError(t, err)
	if assert.NotNil(t, tt) {
		assert.Equal(t, eventID, tt.EventID)
		assert.Equal(t, "USD", tt.Currency)
		assert.True(t, tt.IsActive)
	}

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestCreateTicketType_Forbidden(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	eventID := uuid.New()

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)

	tt, err := f.svc.Create(ctx, eventID, uuid.New(), services.CreateTicketTypeInput{
		Name:        "VIP",
		PaymentMode: domain.PaymentModeFree,
	})

	assert.Nil(t, tt)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
	f.types.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTicketType_Invalid(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)

	tt, err := f.svc.Create(ctx, eventID, organizerID, services.CreateTicketTypeInput{
		Name:        "",
		PaymentMode: domain.PaymentModeFree,
	})

	assert.Nil(t, tt)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateTicketType_Deactivate(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	existing := &domain.TicketType{
		ID:          uuid.New(),
		EventID:     eventID,
		Name:        "General Admission",
		PaymentMode: domain.PaymentModeFree,
		Currency:    "USD",
		IsActive:    true,
	}

	f.types.On("GetByID", ctx, existing.ID).Return(existing, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.types.On("Update", ctx, mock.AnythingOfType("*domain.TicketType")).Return(nil)
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	active := false
	tt, err := f.svc.Update(ctx, existing.ID, organizerID, services.UpdateTicketTypeInput{IsActive: &active})

	assert.NoError(t, err)
	if assert.NotNil(t, tt) {
		assert.False(t, tt.IsActive)
	}

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestUpdateTicketType_UnlimitedWins(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	existing := &domain.TicketType{
		ID:            uuid.New(),
		EventID:       eventID,
		Name:          "General Admission",
		PaymentMode:   domain.PaymentModeFree,
		Currency:      "USD",
		QuantityTotal: intPtr(50),
		IsActive:      true,
	}

	f.types.On("GetByID", ctx, existing.ID).Return(existing, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.types.On("Update", ctx, mock.AnythingOfType("*domain.TicketType")).Return(nil)
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	unlimited := true
	tt, err := f.svc.Update(ctx, existing.ID, organizerID, services.UpdateTicketTypeInput{
		QuantityTotal: intPtr(500),
		Unlimited:     &unlimited,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, tt) {
		assert.Nil(t, tt.QuantityTotal)
	}
}

// Lowering the cap below the sold count is a legal edit: it clamps
// future issuance and never touches tickets that are already out.
func TestUpdateTicketType_LowerTotalBelowSold(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	existing := &domain.TicketType{
		ID:            uuid.New(),
		EventID:       eventID,
		Name:          "General Admission",
		PaymentMode:   domain.PaymentModeFree,
		Currency:      "USD",
		QuantityTotal: intPtr(10),
		QuantitySold:  5,
		IsActive:      true,
	}

	f.types.On("GetByID", ctx, existing.ID).Return(existing, nil)
	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.types.On("Update", ctx, mock.MatchedBy(func(tt *domain.TicketType) bool {
		return tt.QuantityTotal != nil && *tt.QuantityTotal == 3 && tt.QuantitySold == 5
	})).Return(nil)
	f.redis.ExpectDel(fmt.Sprintf("tickettypes:%s", eventID)).SetVal(1)

	tt, err := f.svc.Update(ctx, existing.ID, organizerID, services.UpdateTicketTypeInput{
		QuantityTotal: intPtr(3),
	})

	assert.NoError(t, err)
	if assert.NotNil(t, tt) {
		assert.False(t, tt.CanSell(1))
		if assert.NotNil(t, tt.Remaining()) {
			assert.Equal(t, 0, *tt.Remaining())
		}
	}

	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestListPublic_CacheMiss(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	key := fmt.Sprintf("tickettypes:%s", eventID)

	types := []domain.TicketType{
		{
			ID:            uuid.New(),
			EventID:       eventID,
			Name:          "General Admission",
			PaymentMode:   domain.PaymentModeFree,
			Currency:      "USD",
			QuantityTotal: intPtr(100),
			QuantitySold:  40,
			IsActive:      true,
		},
	}

	expected := []services.PublicTicketType{
		{
			ID:          types[0].ID,
			Name:        "General Admission",
			PaymentMode: domain.PaymentModeFree,
			Currency:    "USD",
			Remaining:   intPtr(60),
		},
	}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)
	f.types.On("ListByEvent", ctx, eventID, true).Return(types, nil)
	f.redis.ExpectGet(key).RedisNil()
	f.redis.ExpectSet(key, payload, 30*time.Second).SetVal("OK")

	out, err := f.svc.ListPublic(ctx, eventID)

	assert.NoError(t, err)
	assert.Equal(t, expected, out)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestListPublic_CacheHit(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	eventID := uuid.New()
	key := fmt.Sprintf("tickettypes:%s", eventID)

	cached := []services.PublicTicketType{
		{
			ID:          uuid.New(),
			Name:        "VIP",
			PaymentMode: domain.PaymentModeManual,
			PriceCents:  100000,
			Currency:    "USD",
		},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)
	f.redis.ExpectGet(key).SetVal(string(payload))

	out, err := f.svc.ListPublic(ctx, eventID)

	assert.NoError(t, err)
	assert.Equal(t, cached, out)
	f.types.AssertNotCalled(t, "ListByEvent", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestListManagement(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	expected := []domain.TicketType{
		{ID: uuid.New(), EventID: eventID, Name: "General Admission", IsActive: true},
		{ID: uuid.New(), EventID: eventID, Name: "Retired Tier", IsActive: false},
	}

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: organizerID}, nil)
	f.types.On("ListByEvent", ctx, eventID, false).Return(expected, nil)

	out, err := f.svc.ListManagement(ctx, eventID, organizerID)

	assert.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestListManagement_Forbidden(t *testing.T) {
	f := newCatalogFixture(t)

	ctx := context.Background()
	eventID := uuid.New()

	f.events.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, CreatorID: uuid.New()}, nil)

	out, err := f.svc.ListManagement(ctx, eventID, uuid.New())

	assert.Nil(t, out)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}
