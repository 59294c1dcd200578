package api

import (
	"time"

	"github.com/phrazzld/examzen/internal/domain"
)

// AnalyzeResponse is the result of a chapter analysis.
type AnalyzeResponse struct {
	Report string `json:"report"`
	Model  string `json:"model"`
	Pages  int    `json:"pages"`
}

// QuizRequest defines the payload for quiz generation. A zero count means
// the default question count. The upper bound is checked by the assistant.
type QuizRequest struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

// QuizResponse is a generated quiz.
type QuizResponse struct {
	Quiz  string `json:"quiz"`
	Model string `json:"model"`
}

// TranslateRequest defines the payload for translation.
type TranslateRequest struct {
	Text           string `json:"text"            validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required"`
}

// TranslateResponse is a translation into TargetLanguage.
type TranslateResponse struct {
	Translation    string `json:"translation"`
	TargetLanguage string `json:"target_language"`
	Model          string `json:"model"`
}

// LanguagesResponse lists the selectable translation targets.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// CreateNoteRequest defines the payload for adding a note.
type CreateNoteRequest struct {
	Text string `json:"text" validate:"required"`
}

// NoteResponse represents a note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NotesResponse lists a session's notes in creation order.
type NotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// SummaryResponse is a revision sheet built from the session's notes.
type SummaryResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}

func noteToResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
	}
}
