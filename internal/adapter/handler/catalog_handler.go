package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openpass/ticketing/internal/core/domain"
	"github.com/openpass/ticketing/internal/core/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var in services.CreateTicketTypeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, domain.Invalid("invalid json body"))
		return
	}

	tt, err := h.svc.Create(r.Context(), eventID, callerID(r), in)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"ticket_type": toTicketTypeJSON(tt)})
}

func (h *CatalogHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	typeID, err := pathUUID(vars, "typeId")
	if err != nil {
		respondError(w, err)
		return
	}

	var in services.UpdateTicketTypeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, domain.Invalid("invalid json body"))
		return
	}

	tt, err := h.svc.Update(r.Context(), typeID, callerID(r), in)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ticket_type": toTicketTypeJSON(tt)})
}

func (h *CatalogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	types, err := h.svc.ListPublic(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ticket_types": types})
}

func (h *CatalogHandler) ListManagement(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	types, err := h.svc.ListManagement(r.Context(), eventID, callerID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]ticketTypeJSON, 0, len(types))
	for i := range types {
		out = append(out, toTicketTypeJSON(&types[i]))
	}

	respondJSON(w, http.StatusOK, map[string]any{"ticket_types": out})
}
