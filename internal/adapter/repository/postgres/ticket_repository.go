package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

const ticketColumns = `id, event_id, ticket_type_id, owner_id, order_id, code, status, issued_at, checked_in_at, checked_in_by`

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE owner_id = $1 ORDER BY issued_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

func (r *TicketRepository) GetByCode(ctx context.Context, eventID uuid.UUID, code string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE event_id = $1 AND code = $2`

	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, eventID, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("ticket not found")
		}

		return nil, err
	}

	return ticket, nil
}

// CheckIn is the guarded transition issued -> checked_in. The status
// predicate makes it a compare-and-set: of two simultaneous scans only
// one matches a row, so updated reports who won.
func (r *TicketRepository) CheckIn(ctx context.Context, ticketID, staffID uuid.UUID) (*domain.Ticket, bool, error) {
	query := `
	UPDATE tickets
	SET status = $1,
		checked_in_at = now(),
		checked_in_by = $2
	WHERE id = $3 AND status = $4
	RETURNING ` + ticketColumns

	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, domain.TicketCheckedIn, staffID, ticketID, domain.TicketIssued))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}

		return nil, false, err
	}

	return ticket, true, nil
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var orderID uuid.NullUUID
	var checkedInAt sql.NullTime
	var checkedInBy uuid.NullUUID

	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketTypeID,
		&ticket.OwnerID,
		&orderID,
		&ticket.Code,
		&ticket.Status,
		&ticket.IssuedAt,
		&checkedInAt,
		&checkedInBy,
	)

	if err != nil {
		return nil, err
	}

	if orderID.Valid {
		id := orderID.UUID
		ticket.OrderID = &id
	}

	if checkedInAt.Valid {
		ticket.CheckedInAt = &checkedInAt.Time
	}

	if checkedInBy.Valid {
		id := checkedInBy.UUID
		ticket.CheckedInBy = &id
	}

	return &ticket, nil
}
