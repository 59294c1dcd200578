package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/examzen/internal/api/shared"
	"github.com/phrazzld/examzen/internal/service"
)

// NoteHandler handles session note requests. Routes using it must sit behind
// the session middleware.
type NoteHandler struct {
	notes     service.NoteService
	assistant service.Assistant
	validator *validator.Validate
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes service.NoteService, assistant service.Assistant) *NoteHandler {
	return &NoteHandler{
		notes:     notes,
		assistant: assistant,
		validator: validator.New(),
	}
}

// ListNotes handles GET /api/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getSessionID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	notes, err := h.notes.List(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list notes")
		return
	}

	resp := NotesResponse{Notes: make([]NoteResponse, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, noteToResponse(n))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateNote handles POST /api/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getSessionID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateNoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	note, err := h.notes.Add(r.Context(), sessionID, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, noteToResponse(note))
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getSessionID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.notes.Delete(r.Context(), sessionID, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearNotes handles DELETE /api/notes.
func (h *NoteHandler) ClearNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getSessionID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.notes.Clear(r.Context(), sessionID); err != nil {
		HandleAPIError(w, r, err, "Failed to clear notes")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SummarizeNotes handles POST /api/notes/summary.
func (h *NoteHandler) SummarizeNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getSessionID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.assistant.SummarizeNotes(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to summarize notes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		Summary: result.Text,
		Model:   result.Model,
	})
}
