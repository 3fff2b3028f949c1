package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

const orderColumns = `id, event_id, ticket_type_id, buyer_id, quantity, total_cents, currency, status, created_at, paid_at`

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("order not found")
		}

		return nil, err
	}

	return order, nil
}

func (r *OrderRepository) ListByEventAndStatus(ctx context.Context, eventID uuid.UUID, status domain.OrderStatus) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE event_id = $1 AND status = $2 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, eventID, status)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// MarkPaidAndIssue flips pending -> paid and creates the order's
// tickets in one transaction. The flip is conditional on the current
// status, so of two racing calls exactly one updates a row; the other
// gets KindConflict and the transaction writes nothing.
func (r *OrderRepository) MarkPaidAndIssue(ctx context.Context, orderID uuid.UUID, codes []string) (*domain.Order, []domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	defer tx.Rollback()

	update := `
	UPDATE orders
	SET status = $1, paid_at = now()
	WHERE id = $2 AND status = $3
	RETURNING ` + orderColumns

	order, err := scanOrder(tx.QueryRowContext(ctx, update, domain.OrderPaid, orderID, domain.OrderPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, r.classifyMissedUpdate(ctx, tx, orderID)
		}

		return nil, nil, err
	}

	if len(codes) != order.Quantity {
		return nil, nil, fmt.Errorf("expected %d ticket codes, got %d", order.Quantity, len(codes))
	}

	tickets, err := insertTickets(ctx, tx, order.EventID, order.TicketTypeID, order.BuyerID, &order.ID, codes)
	if err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit fulfillment: %w", err)
	}

	return order, tickets, nil
}

// classifyMissedUpdate distinguishes a missing order from one that was
// already paid when the conditional update matched no rows.
func (r *OrderRepository) classifyMissedUpdate(ctx context.Context, tx *sql.Tx, orderID uuid.UUID) error {
	var status domain.OrderStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)

	if err == sql.ErrNoRows {
		return domain.NotFound("order not found")
	}
	if err != nil {
		return err
	}

	return domain.Conflict("order is not pending")
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var paidAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.EventID,
		&order.TicketTypeID,
		&order.BuyerID,
		&order.Quantity,
		&order.TotalCents,
		&order.Currency,
		&order.Status,
		&order.CreatedAt,
		&paidAt,
	)

	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}

	return &order, nil
}
