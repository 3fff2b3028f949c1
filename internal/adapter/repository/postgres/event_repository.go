package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	query := `
	SELECT id, creator_id, name, created_at
	FROM events
	WHERE id = $1
	`

	var event domain.Event
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.CreatorID,
		&event.Name,
		&event.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("event not found")
		}

		return nil, err
	}

	return &event, nil
}
