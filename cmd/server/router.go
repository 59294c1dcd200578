package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/examzen/internal/api"
	apiMiddleware "github.com/phrazzld/examzen/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	assistantHandler := api.NewAssistantHandler(app.assistant, api.UploadLimits{
		MaxFiles:     app.config.Upload.MaxFiles,
		MaxFileBytes: app.config.Upload.MaxFileBytes,
	})
	noteHandler := api.NewNoteHandler(app.noteService, app.assistant)

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", assistantHandler.Analyze)
		r.Post("/quiz", assistantHandler.Quiz)
		r.Post("/translate", assistantHandler.Translate)
		r.Get("/languages", assistantHandler.Languages)

		r.Route("/notes", func(r chi.Router) {
			r.Use(apiMiddleware.SessionMiddleware)
			r.Get("/", noteHandler.ListNotes)
			r.Post("/", noteHandler.CreateNote)
			r.Delete("/", noteHandler.ClearNotes)
			r.Post("/summary", noteHandler.SummarizeNotes)
			r.Delete("/{id}", noteHandler.DeleteNote)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
