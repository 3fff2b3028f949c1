package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is owned by the platform's event module; this service only
// reads it to enforce organizer authorization.
type Event struct {
	ID        uuid.UUID
	CreatorID uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (e *Event) IsCreator(userID uuid.UUID) bool {
	return e.CreatorID == userID
}
