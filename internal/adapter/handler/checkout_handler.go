package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/services"
)

type CheckoutHandler struct {
	svc *services.IssuanceService
}

func NewCheckoutHandler(svc *services.IssuanceService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Checkout responds with either issued tickets (free types) or a
// pending order (manual payment), never both.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req services.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Invalid("invalid json body"))
		return
	}

	result, err := h.svc.Checkout(r.Context(), eventID, callerID(r), req)
	if err != nil {
		respondError(w, err)
		return
	}

	if result.Order != nil {
		respondJSON(w, http.StatusCreated, map[string]any{"order": toOrderJSON(result.Order)})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"tickets": toTicketListJSON(result.Tickets)})
}

func (h *CheckoutHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.svc.ListMine(r.Context(), callerID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"tickets": toTicketListJSON(tickets)})
}
