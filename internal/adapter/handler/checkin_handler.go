package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/services"
)

type CheckInHandler struct {
	svc *services.CheckInService
}

func NewCheckInHandler(svc *services.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

type checkInRequest struct {
	Code string `json:"code"`
}

func (h *CheckInHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Invalid("invalid json body"))
		return
	}

	ticket, err := h.svc.CheckIn(r.Context(), eventID, callerID(r), req.Code)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ticket": toTicketJSON(ticket),
		"buyer":  ticket.OwnerID,
	})
}
