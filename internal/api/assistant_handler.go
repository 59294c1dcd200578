package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/examzen/internal/api/shared"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/platform/logger"
	"github.com/phrazzld/examzen/internal/service"
)

// PagesField is the multipart field carrying chapter page images.
const PagesField = "pages"

// multipartMemory is how much of an upload is buffered in memory before
// spilling to temporary files.
const multipartMemory = 32 << 20

// UploadLimits bounds chapter page uploads.
type UploadLimits struct {
	MaxFiles     int
	MaxFileBytes int64
}

// AssistantHandler handles the model-backed study features.
type AssistantHandler struct {
	assistant service.Assistant
	limits    UploadLimits
	validator *validator.Validate
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistant service.Assistant, limits UploadLimits) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		limits:    limits,
		validator: validator.New(),
	}
}

// Analyze handles POST /api/analyze. Pages are read from the repeated
// multipart field "pages" and sent to the model in upload order.
func (h *AssistantHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if h.limits.MaxFiles > 0 && h.limits.MaxFileBytes > 0 {
		maxBody := int64(h.limits.MaxFiles)*h.limits.MaxFileBytes + 1<<20
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Upload is too large")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Request must be multipart/form-data with one or more pages", err)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	files := r.MultipartForm.File[PagesField]
	if h.limits.MaxFiles > 0 && len(files) > h.limits.MaxFiles {
		HandleAPIError(w, r, domain.NewValidationError("pages",
			fmt.Sprintf("must be at most %d", h.limits.MaxFiles), domain.ErrTooManyImages), "")
		return
	}

	pages := make([]domain.Image, 0, len(files))
	for _, fh := range files {
		page, err := h.readPage(fh)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to read uploaded page")
			return
		}
		pages = append(pages, page)
	}

	log.Debug("chapter pages received", "pages", len(pages))

	result, err := h.assistant.AnalyzeChapter(r.Context(), pages)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze chapter")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeResponse{
		Report: result.Text,
		Model:  result.Model,
		Pages:  len(pages),
	})
}

func (h *AssistantHandler) readPage(fh *multipart.FileHeader) (domain.Image, error) {
	if h.limits.MaxFileBytes > 0 && fh.Size > h.limits.MaxFileBytes {
		return domain.Image{}, domain.NewValidationError("page "+fh.Filename,
			fmt.Sprintf("exceeds %d bytes", h.limits.MaxFileBytes), domain.ErrImageTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Image{}, fmt.Errorf("open uploaded page: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Image{}, fmt.Errorf("read uploaded page: %w", err)
	}

	return domain.NewImage(fh.Filename, data, h.limits.MaxFileBytes)
}

// Quiz handles POST /api/quiz.
func (h *AssistantHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.assistant.GenerateQuiz(r.Context(), req.Topic, req.Count)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate quiz")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{
		Quiz:  result.Text,
		Model: result.Model,
	})
}

// Translate handles POST /api/translate.
func (h *AssistantHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	language, err := domain.ParseLanguage(req.TargetLanguage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.assistant.Translate(r.Context(), req.Text, language)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to translate text")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TranslateResponse{
		Translation:    result.Text,
		TargetLanguage: language,
		Model:          result.Model,
	})
}

// Languages handles GET /api/languages.
func (h *AssistantHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages := make([]string, len(domain.Languages))
	copy(languages, domain.Languages)
	shared.RespondWithJSON(w, r, http.StatusOK, LanguagesResponse{Languages: languages})
}
