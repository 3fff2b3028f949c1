package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/openpass/ticketing/internal/core/domain"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Identity trusts the platform gateway: authentication happens upstream
// and the authenticated user id arrives in X-User-ID.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, map[string]any{
				"error": errorBody{Kind: "unauthorized", Message: "missing caller identity"},
			})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return id
}

func pathUUID(vars map[string]string, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(vars[name])
	if err != nil {
		return uuid.Nil, domain.Invalid("invalid " + name + " in path")
	}
	return id, nil
}
