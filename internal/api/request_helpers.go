package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/api/shared"
	"github.com/phrazzld/examzen/internal/domain"
)

// getSessionID extracts the note session bound by the session middleware.
func getSessionID(r *http.Request) (string, error) {
	sessionID, ok := shared.GetSessionID(r.Context())
	if !ok {
		return "", domain.NewValidationError("session", "is required", domain.ErrInvalidID)
	}
	return sessionID, nil
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
