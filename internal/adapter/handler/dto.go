package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

type ticketTypeJSON struct {
	ID            uuid.UUID          `json:"id"`
	EventID       uuid.UUID          `json:"event_id"`
	Name          string             `json:"name"`
	PaymentMode   domain.PaymentMode `json:"payment_mode"`
	PriceCents    int64              `json:"price_cents"`
	Currency      string             `json:"currency"`
	QuantityTotal *int               `json:"quantity_total"`
	QuantitySold  int                `json:"quantity_sold"`
	IsActive      bool               `json:"is_active"`
	Description   string             `json:"description,omitempty"`
	Contact       string             `json:"contact,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func toTicketTypeJSON(tt *domain.TicketType) ticketTypeJSON {
	return ticketTypeJSON{
		ID:            tt.ID,
		EventID:       tt.EventID,
		Name:          tt.Name,
		PaymentMode:   tt.PaymentMode,
		PriceCents:    tt.PriceCents,
		Currency:      tt.Currency,
		QuantityTotal: tt.QuantityTotal,
		QuantitySold:  tt.QuantitySold,
		IsActive:      tt.IsActive,
		Description:   tt.Description,
		Contact:       tt.Contact,
		CreatedAt:     tt.CreatedAt,
		UpdatedAt:     tt.UpdatedAt,
	}
}

type orderJSON struct {
	ID           uuid.UUID          `json:"id"`
	EventID      uuid.UUID          `json:"event_id"`
	TicketTypeID uuid.UUID          `json:"ticket_type_id"`
	BuyerID      uuid.UUID          `json:"buyer_id"`
	Quantity     int                `json:"quantity"`
	TotalCents   int64              `json:"total_cents"`
	Currency     string             `json:"currency"`
	Status       domain.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	PaidAt       *time.Time         `json:"paid_at,omitempty"`
}

func toOrderJSON(o *domain.Order) orderJSON {
	return orderJSON{
		ID:           o.ID,
		EventID:      o.EventID,
		TicketTypeID: o.TicketTypeID,
		BuyerID:      o.BuyerID,
		Quantity:     o.Quantity,
		TotalCents:   o.TotalCents,
		Currency:     o.Currency,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		PaidAt:       o.PaidAt,
	}
}

type ticketJSON struct {
	ID           uuid.UUID           `json:"id"`
	EventID      uuid.UUID           `json:"event_id"`
	TicketTypeID uuid.UUID           `json:"ticket_type_id"`
	OwnerID      uuid.UUID           `json:"owner_id"`
	OrderID      *uuid.UUID          `json:"order_id,omitempty"`
	Code         string              `json:"code"`
	Status       domain.TicketStatus `json:"status"`
	IssuedAt     time.Time           `json:"issued_at"`
	CheckedInAt  *time.Time          `json:"checked_in_at,omitempty"`
	CheckedInBy  *uuid.UUID          `json:"checked_in_by,omitempty"`
}

func toTicketJSON(t *domain.Ticket) ticketJSON {
	return ticketJSON{
		ID:           t.ID,
		EventID:      t.EventID,
		TicketTypeID: t.TicketTypeID,
		OwnerID:      t.OwnerID,
		OrderID:      t.OrderID,
		Code:         t.Code,
		Status:       t.Status,
		IssuedAt:     t.IssuedAt,
		CheckedInAt:  t.CheckedInAt,
		CheckedInBy:  t.CheckedInBy,
	}
}

func toTicketListJSON(tickets []domain.Ticket) []ticketJSON {
	out := make([]ticketJSON, 0, len(tickets))
	for i := range tickets {
		out = append(out, toTicketJSON(&tickets[i]))
	}
	return out
}
