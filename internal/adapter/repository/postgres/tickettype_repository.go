package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

const ticketTypeColumns = `id, event_id, name, payment_mode, price_cents, currency, quantity_total, quantity_sold, is_active, description, contact, created_at, updated_at`

type TicketTypeRepository struct {
	db *sql.DB
}

func NewTicketTypeRepository(db *sql.DB) *TicketTypeRepository {
	return &TicketTypeRepository{db: db}
}

func (r *TicketTypeRepository) Create(ctx context.Context, tt *domain.TicketType) error {
	query := `
	INSERT INTO ticket_types (id, event_id, name, payment_mode, price_cents, currency, quantity_total, quantity_sold, is_active, description, contact, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		tt.ID,
		tt.EventID,
		tt.Name,
		tt.PaymentMode,
		tt.PriceCents,
		tt.Currency,
		quantityTotalValue(tt.QuantityTotal),
		tt.QuantitySold,
		tt.IsActive,
		tt.Description,
		tt.Contact,
		tt.CreatedAt,
		tt.UpdatedAt,
	)

	return err
}

// Update never writes quantity_sold; that counter belongs exclusively
// to the issuance transaction.
func (r *TicketTypeRepository) Update(ctx context.Context, tt *domain.TicketType) error {
	query := `
	UPDATE ticket_types
	SET name = $1,
		payment_mode = $2,
		price_cents = $3,
		currency = $4,
		quantity_total = $5,
		is_active = $6,
		description = $7,
		contact = $8,
		updated_at = $9
	WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		tt.Name,
		tt.PaymentMode,
		tt.PriceCents,
		tt.Currency,
		quantityTotalValue(tt.QuantityTotal),
		tt.IsActive,
		tt.Description,
		tt.Contact,
		tt.UpdatedAt,
		tt.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NotFound("ticket type not found")
	}

	return nil
}

func (r *TicketTypeRepository) GetByID(ctx context.Context, typeID uuid.UUID) (*domain.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1`

	tt, err := scanTicketType(r.db.QueryRowContext(ctx, query, typeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("ticket type not found")
		}

		return nil, err
	}

	return tt, nil
}

func (r *TicketTypeRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, activeOnly bool) ([]domain.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE event_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var types []domain.TicketType
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}

		types = append(types, *tt)
	}

	return types, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicketType(row rowScanner) (*domain.TicketType, error) {
	var tt domain.TicketType
	var quantityTotal sql.NullInt64

	err := row.Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.PaymentMode,
		&tt.PriceCents,
		&tt.Currency,
		&quantityTotal,
		&tt.QuantitySold,
		&tt.IsActive,
		&tt.Description,
		&tt.Contact,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if quantityTotal.Valid {
		total := int(quantityTotal.Int64)
		tt.QuantityTotal = &total
	}

	return &tt, nil
}

func quantityTotalValue(total *int) any {
	if total == nil {
		return nil
	}

	return *total
}
