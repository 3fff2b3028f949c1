package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports"
	"github.com/openpass/ticketing/internal/monitoring"
)

// ticketCodeLength matches the generator's output; anything shorter is
// rejected before touching the database.
const ticketCodeLength = 32

type CheckInService struct {
	events  ports.EventRepository
	tickets ports.TicketRepository
}

func NewCheckInService(events ports.EventRepository, tickets ports.TicketRepository) *CheckInService {
	return &CheckInService{
		events:  events,
		tickets: tickets,
	}
}

// CheckIn redeems a ticket code at the gate, exactly once. The status
// transition is a single conditional update keyed on the prior status,
// so two simultaneous scans of the same code produce one success and
// one AlreadyUsedError carrying the first scan's timestamp.
func (s *CheckInService) CheckIn(ctx context.Context, eventID, staffID uuid.UUID, rawCode string) (*domain.Ticket, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsCreator(staffID) {
		return nil, domain.Forbidden("only the event creator can check in tickets")
	}

	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if len(code) < ticketCodeLength {
		monitoring.CheckIn("invalid_code")
		return nil, domain.InvalidCode("invalid ticket code")
	}

	ticket, err := s.tickets.GetByCode(ctx, eventID, code)
	if err != nil {
		// A code from another event is indistinguishable from a forged one.
		if domain.IsKind(err, domain.KindNotFound) {
			monitoring.CheckIn("invalid_code")
			return nil, domain.InvalidCode("invalid ticket code")
		}
		return nil, err
	}

	if ticket.IsCheckedIn() {
		monitoring.CheckIn("already_used")
		return nil, alreadyUsed(ticket)
	}

	updated, ok, err := s.tickets.CheckIn(ctx, ticket.ID, staffID)
	if err != nil {
		return nil, err
	}

	if !ok {
		// Lost the race against a concurrent scan; report the winner's stamp.
		current, err := s.tickets.GetByCode(ctx, eventID, code)
		if err != nil {
			return nil, err
		}
		monitoring.CheckIn("already_used")
		return nil, alreadyUsed(current)
	}

	monitoring.CheckIn("success")

	return updated, nil
}

func alreadyUsed(t *domain.Ticket) error {
	used := &domain.AlreadyUsedError{}
	if t.CheckedInAt != nil {
		used.CheckedInAt = *t.CheckedInAt
	}
	if t.CheckedInBy != nil {
		used.CheckedInBy = *t.CheckedInBy
	}
	return used
}
