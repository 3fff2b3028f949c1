package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports"
)

const catalogCacheTTL = 30 * time.Second

func catalogCacheKey(eventID uuid.UUID) string {
	return fmt.Sprintf("tickettypes:%s", eventID)
}

// invalidateCatalog drops the cached public catalog for an event.
// Cache errors are logged and swallowed; the DB stays authoritative.
func invalidateCatalog(ctx context.Context, cache *redis.Client, eventID uuid.UUID) {
	if err := cache.Del(ctx, catalogCacheKey(eventID)).Err(); err != nil {
		slog.Warn("failed to invalidate catalog cache", "event_id", eventID, "error", err)
	}
}

type CreateTicketTypeInput struct {
	Name          string             `json:"name"`
	PaymentMode   domain.PaymentMode `json:"payment_mode"`
	PriceCents    int64              `json:"price_cents"`
	Currency      string             `json:"currency"`
	QuantityTotal *int               `json:"quantity_total"`
	Description   string             `json:"description"`
	Contact       string             `json:"contact"`
}

type UpdateTicketTypeInput struct {
	Name          *string             `json:"name"`
	PaymentMode   *domain.PaymentMode `json:"payment_mode"`
	PriceCents    *int64              `json:"price_cents"`
	Currency      *string             `json:"currency"`
	QuantityTotal *int                `json:"quantity_total"`
	// Unlimited clears the capacity limit; it wins over QuantityTotal.
	Unlimited   *bool   `json:"unlimited"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
}

// PublicTicketType is the checkout-facing view of a type: active types
// only, no sold counters beyond the remaining capacity.
type PublicTicketType struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	PaymentMode domain.PaymentMode `json:"payment_mode"`
	PriceCents  int64              `json:"price_cents"`
	Currency    string             `json:"currency"`
	Remaining   *int               `json:"remaining,omitempty"`
	Description string             `json:"description,omitempty"`
	Contact     string             `json:"contact,omitempty"`
}

type CatalogService struct {
	events ports.EventRepository
	types  ports.TicketTypeRepository
	cache  *redis.Client
}

func NewCatalogService(events ports.EventRepository, types ports.TicketTypeRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{
		events: events,
		types:  types,
		cache:  cache,
	}
}

func (s *CatalogService) Create(ctx context.Context, eventID, organizerID uuid.UUID, in CreateTicketTypeInput) (*domain.TicketType, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsCreator(organizerID) {
		return nil, domain.Forbidden("only the event creator can manage ticket types")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	tt := &domain.TicketType{
		ID:            uuid.New(),
		EventID:       eventID,
		Name:          strings.TrimSpace(in.Name),
		PaymentMode:   in.PaymentMode,
		PriceCents:    in.PriceCents,
		Currency:      currency,
		QuantityTotal: in.QuantityTotal,
		IsActive:      true,
		Description:   in.Description,
		Contact:       in.Contact,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := tt.ValidateNew(); err != nil {
		return nil, err
	}

	if err := s.types.Create(ctx, tt); err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, s.cache, eventID)

	return tt, nil
}

// Update applies a partial edit. Lowering QuantityTotal below
// QuantitySold is allowed: it clamps future sales and never touches
// tickets that are already out. Deactivation is equally non-retroactive.
func (s *CatalogService) Update(ctx context.Context, typeID, organizerID uuid.UUID, in UpdateTicketTypeInput) (*domain.TicketType, error) {
	tt, err := s.types.GetByID(ctx, typeID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, tt.EventID)
	if err != nil {
		return nil, err
	}

	if !event.IsCreator(organizerID) {
		return nil, domain.Forbidden("only the event creator can manage ticket types")
	}

	if in.Name != nil {
		tt.Name = strings.TrimSpace(*in.Name)
	}
	if in.PaymentMode != nil {
		tt.PaymentMode = *in.PaymentMode
	}
	if in.PriceCents != nil {
		tt.PriceCents = *in.PriceCents
	}
	if in.Currency != nil {
		tt.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if in.QuantityTotal != nil {
		tt.QuantityTotal = in.QuantityTotal
	}
	if in.Unlimited != nil && *in.Unlimited {
		tt.QuantityTotal = nil
	}
	if in.IsActive != nil {
		tt.IsActive = *in.IsActive
	}
	if in.Description != nil {
		tt.Description = *in.Description
	}
	if in.Contact != nil {
		tt.Contact = *in.Contact
	}
	tt.UpdatedAt = time.Now().UTC()

	if err := tt.ValidateNew(); err != nil {
		return nil, err
	}

	if err := s.types.Update(ctx, tt); err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, s.cache, tt.EventID)

	return tt, nil
}

func (s *CatalogService) ListPublic(ctx context.Context, eventID uuid.UUID) ([]PublicTicketType, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	key := catalogCacheKey(eventID)
	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var out []PublicTicketType
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	} else if err != redis.Nil {
		slog.Warn("catalog cache read failed", "event_id", eventID, "error", err)
	}

	types, err := s.types.ListByEvent(ctx, eventID, true)
	if err != nil {
		return nil, err
	}

	out := make([]PublicTicketType, 0, len(types))
	for i := range types {
		tt := &types[i]
		out = append(out, PublicTicketType{
			ID:          tt.ID,
			Name:        tt.Name,
			PaymentMode: tt.PaymentMode,
			PriceCents:  tt.PriceCents,
			Currency:    tt.Currency,
			Remaining:   tt.Remaining(),
			Description: tt.Description,
			Contact:     tt.Contact,
		})
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
			slog.Warn("catalog cache write failed", "event_id", eventID, "error", err)
		}
	}

	return out, nil
}

func (s *CatalogService) ListManagement(ctx context.Context, eventID, organizerID uuid.UUID) ([]domain.TicketType, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsCreator(organizerID) {
		return nil, domain.Forbidden("only the event creator can view the management catalog")
	}

	return s.types.ListByEvent(ctx, eventID, false)
}
