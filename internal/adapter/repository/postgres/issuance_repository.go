package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

// IssuanceRepository serializes all capacity mutations for a ticket
// type behind its row lock. Both write paths run SELECT FOR UPDATE,
// re-check availability under the lock, increment quantity_sold and
// create the resulting rows in the same transaction, so a failed call
// leaves no partial reservation behind.
type IssuanceRepository struct {
	db *sql.DB
}

func NewIssuanceRepository(db *sql.DB) *IssuanceRepository {
	return &IssuanceRepository{db: db}
}

func (r *IssuanceRepository) IssueInstant(ctx context.Context, typeID, buyerID uuid.UUID, codes []string) ([]domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	tt, err := r.reserveCapacity(ctx, tx, typeID, len(codes))
	if err != nil {
		return nil, err
	}

	tickets, err := insertTickets(ctx, tx, tt.EventID, tt.ID, buyerID, nil, codes)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit issuance: %w", err)
	}

	return tickets, nil
}

func (r *IssuanceRepository) CreatePendingOrder(ctx context.Context, typeID, buyerID uuid.UUID, qty int) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	tt, err := r.reserveCapacity(ctx, tx, typeID, qty)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:           uuid.New(),
		EventID:      tt.EventID,
		TicketTypeID: tt.ID,
		BuyerID:      buyerID,
		Quantity:     qty,
		// Priced from the locked row, not the caller's earlier read.
		TotalCents: tt.PriceCents * int64(qty),
		Currency:   tt.Currency,
		Status:     domain.OrderPending,
		CreatedAt:  time.Now().UTC(),
	}

	query := `
	INSERT INTO orders (id, event_id, ticket_type_id, buyer_id, quantity, total_cents, currency, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.ExecContext(ctx, query,
		order.ID,
		order.EventID,
		order.TicketTypeID,
		order.BuyerID,
		order.Quantity,
		order.TotalCents,
		order.Currency,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

// reserveCapacity locks the type row and performs the guarded
// check-and-increment. Unlimited types skip the check but still count
// sales. The caller's transaction owns the rollback.
func (r *IssuanceRepository) reserveCapacity(ctx context.Context, tx *sql.Tx, typeID uuid.UUID, qty int) (*domain.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1 FOR UPDATE`

	tt, err := scanTicketType(tx.QueryRowContext(ctx, query, typeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("ticket type not found")
		}

		return nil, err
	}

	if !tt.IsActive {
		return nil, domain.Invalid("ticket type is not available")
	}

	if !tt.CanSell(qty) {
		return nil, domain.CapacityExceeded("not enough tickets remaining")
	}

	update := `
	UPDATE ticket_types
	SET quantity_sold = quantity_sold + $1,
		updated_at = now()
	WHERE id = $2
	`

	if _, err := tx.ExecContext(ctx, update, qty, typeID); err != nil {
		return nil, fmt.Errorf("failed to reserve capacity: %w", err)
	}

	tt.QuantitySold += qty

	return tt, nil
}

// insertTickets creates one issued ticket per code inside the caller's
// transaction. A unique-constraint hit on the code column surfaces as
// domain.ErrDuplicateCode so the service can retry with fresh codes.
func insertTickets(ctx context.Context, tx *sql.Tx, eventID, typeID, ownerID uuid.UUID, orderID *uuid.UUID, codes []string) ([]domain.Ticket, error) {
	query := `
	INSERT INTO tickets (id, event_id, ticket_type_id, owner_id, order_id, code, status, issued_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare ticket statement: %w", err)
	}

	defer stmt.Close()

	issuedAt := time.Now().UTC()
	tickets := make([]domain.Ticket, 0, len(codes))

	for _, code := range codes {
		ticket := domain.Ticket{
			ID:           uuid.New(),
			EventID:      eventID,
			TicketTypeID: typeID,
			OwnerID:      ownerID,
			OrderID:      orderID,
			Code:         code,
			Status:       domain.TicketIssued,
			IssuedAt:     issuedAt,
		}

		var orderValue any
		if orderID != nil {
			orderValue = *orderID
		}

		_, err := stmt.ExecContext(ctx, ticket.ID, ticket.EventID, ticket.TicketTypeID, ticket.OwnerID, orderValue, ticket.Code, ticket.Status, ticket.IssuedAt)
		if err != nil {
			if isUniqueViolation(err, "tickets_code_key") {
				return nil, domain.ErrDuplicateCode
			}

			return nil, fmt.Errorf("failed to insert ticket: %w", err)
		}

		tickets = append(tickets, ticket)
	}

	return tickets, nil
}
