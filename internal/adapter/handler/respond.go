package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

type errorBody struct {
	Kind        domain.Kind `json:"kind"`
	Message     string      `json:"message"`
	CheckedInAt *time.Time  `json:"checked_in_at,omitempty"`
	CheckedInBy *uuid.UUID  `json:"checked_in_by,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	body := errorBody{Kind: kind, Message: err.Error()}

	var used *domain.AlreadyUsedError
	if errors.As(err, &used) {
		body.Message = "ticket was already checked in"
		at := used.CheckedInAt
		by := used.CheckedInBy
		body.CheckedInAt = &at
		body.CheckedInBy = &by
	}

	if kind == domain.KindInternal {
		slog.Error("request failed", "error", err)
		body.Message = "internal server error"
	}

	respondJSON(w, statusForKind(kind), map[string]any{"error": body})
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound, domain.KindInvalidCode:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindCapacityExceeded, domain.KindConflict, domain.KindAlreadyUsed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
