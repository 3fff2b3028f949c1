package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/ports"
	"github.com/openpass/ticketing/internal/monitoring"
)

const (
	// MaxCheckoutQuantity caps a single checkout request.
	MaxCheckoutQuantity = 10

	// codeRetryAttempts bounds retries when a generated code hits the
	// unique constraint. With 128-bit codes this effectively never fires.
	codeRetryAttempts = 3

	notifyTimeout = 5 * time.Second
)

type CheckoutRequest struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
}

// CheckoutResult holds exactly one of Tickets (instant issuance) or
// Order (manual payment, pending organizer confirmation).
type CheckoutResult struct {
	Tickets []domain.Ticket
	Order   *domain.Order
}

type IssuanceService struct {
	types    ports.TicketTypeRepository
	issuance ports.IssuanceRepository
	tickets  ports.TicketRepository
	codes    ports.CodeGenerator
	notifier ports.Notifier
	cache    *redis.Client
}

func NewIssuanceService(
	types ports.TicketTypeRepository,
	issuance ports.IssuanceRepository,
	tickets ports.TicketRepository,
	codes ports.CodeGenerator,
	notifier ports.Notifier,
	cache *redis.Client,
) *IssuanceService {
	return &IssuanceService{
		types:    types,
		issuance: issuance,
		tickets:  tickets,
		codes:    codes,
		notifier: notifier,
		cache:    cache,
	}
}

// Checkout converts a purchase request into issued tickets (free types)
// or a pending order (manual types). Capacity is reserved by the
// repository inside one transaction; when two requests race for the
// last tickets the loser gets KindCapacityExceeded and no side effects.
func (s *IssuanceService) Checkout(ctx context.Context, eventID, buyerID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error) {
	if req.Quantity < 1 || req.Quantity > MaxCheckoutQuantity {
		return nil, domain.Invalid(fmt.Sprintf("quantity must be between 1 and %d", MaxCheckoutQuantity))
	}

	tt, err := s.types.GetByID(ctx, req.TicketTypeID)
	if err != nil {
		return nil, err
	}

	if tt.EventID != eventID {
		return nil, domain.NotFound("ticket type not found for this event")
	}

	if !tt.IsActive {
		return nil, domain.Invalid("ticket type is not available")
	}

	var result *CheckoutResult
	switch tt.PaymentMode {
	case domain.PaymentModeFree:
		result, err = s.issueInstant(ctx, tt, buyerID, req.Quantity)
	case domain.PaymentModeManual:
		result, err = s.createOrder(ctx, tt, buyerID, req.Quantity)
	default:
		return nil, domain.Internal("ticket type has an unknown payment mode")
	}

	if err != nil {
		if domain.IsKind(err, domain.KindCapacityExceeded) {
			monitoring.CapacityRejected()
		}
		return nil, err
	}

	invalidateCatalog(ctx, s.cache, eventID)

	return result, nil
}

func (s *IssuanceService) issueInstant(ctx context.Context, tt *domain.TicketType, buyerID uuid.UUID, qty int) (*CheckoutResult, error) {
	var tickets []domain.Ticket

	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		codes, err := s.newCodes(qty)
		if err != nil {
			return nil, err
		}

		tickets, err = s.issuance.IssueInstant(ctx, tt.ID, buyerID, codes)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			slog.Warn("ticket code collision, retrying", "ticket_type_id", tt.ID, "attempt", attempt+1)
			tickets = nil
			continue
		}
		return nil, err
	}

	if tickets == nil {
		return nil, domain.Internal("could not generate unique ticket codes")
	}

	monitoring.TicketsIssued(string(domain.PaymentModeFree), qty)
	s.notifyIssued(buyerID, tt.EventID, qty)

	return &CheckoutResult{Tickets: tickets}, nil
}

func (s *IssuanceService) createOrder(ctx context.Context, tt *domain.TicketType, buyerID uuid.UUID, qty int) (*CheckoutResult, error) {
	order, err := s.issuance.CreatePendingOrder(ctx, tt.ID, buyerID, qty)
	if err != nil {
		return nil, err
	}

	monitoring.OrderCreated()

	return &CheckoutResult{Order: order}, nil
}

// ListMine returns the caller's tickets for credential display.
func (s *IssuanceService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Ticket, error) {
	return s.tickets.ListByOwner(ctx, ownerID)
}

func (s *IssuanceService) newCodes(n int) ([]string, error) {
	codes := make([]string, n)
	for i := range codes {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, domain.Internal("could not generate ticket code")
		}
		codes[i] = code
	}
	return codes, nil
}

// notifyIssued is fire-and-forget: it runs outside the issuance
// transaction and its failure never fails the checkout.
func (s *IssuanceService) notifyIssued(buyerID, eventID uuid.UUID, count int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.TicketsIssued(ctx, buyerID, eventID, count); err != nil {
			slog.Warn("ticket issuance notification failed", "buyer_id", buyerID, "error", err)
		}
	}()
}
