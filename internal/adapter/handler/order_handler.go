package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/services"
)

type OrderHandler struct {
	svc *services.FulfillmentService
}

func NewOrderHandler(svc *services.FulfillmentService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" && status != string(domain.OrderPending) {
		respondError(w, domain.Invalid("only status=pending is supported"))
		return
	}

	orders, err := h.svc.ListPending(r.Context(), eventID, callerID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]orderJSON, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderJSON(&orders[i]))
	}

	respondJSON(w, http.StatusOK, map[string]any{"orders": out})
}

// MarkPaid is the organizer's payment confirmation. Retrying it is
// safe: a second call finds the order paid and gets a conflict.
func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := pathUUID(vars, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	orderID, err := pathUUID(vars, "orderId")
	if err != nil {
		respondError(w, err)
		return
	}

	order, tickets, err := h.svc.MarkPaid(r.Context(), eventID, orderID, callerID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"order":   toOrderJSON(order),
		"tickets": toTicketListJSON(tickets),
	})
}
