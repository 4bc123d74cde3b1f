// internal/api/handler/guestbook.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"guestbook/internal/api/types"
	"guestbook/internal/service"
	"guestbook/internal/util" // For custom errors
)

// DefaultTimeout bounds the handling of a single request.
const DefaultTimeout = 30 * time.Second

// GuestbookHandler handles HTTP requests related to guestbook entries.
type GuestbookHandler struct {
	service service.GuestbookService
	logger  *slog.Logger
}

// NewGuestbookHandler creates a new GuestbookHandler.
func NewGuestbookHandler(svc service.GuestbookService, logger *slog.Logger) *GuestbookHandler {
	return &GuestbookHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *GuestbookHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *GuestbookHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = util.ErrInvalidInput.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

func parseNumber(r *http.Request) (int64, error) {
	number, err := strconv.ParseInt(chi.URLParam(r, "no"), 10, 64)
	if err != nil || number <= 0 {
		return 0, util.ErrInvalidInput
	}
	return number, nil
}

// Index lists all entries, newest first.
// GET /
func (h *GuestbookHandler) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(entries))
}

// Add stores a new entry from the form fields name, message and password.
// POST /add
func (h *GuestbookHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	entry, err := h.service.Add(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("message"), r.PostForm.Get("password"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.logger.Info("Guestbook entry added", "no", entry.Number)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteForm describes the entry a delete confirmation refers to.
// GET /delete/{no}
func (h *GuestbookHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	entry, err := h.service.Get(r.Context(), number)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"no":         entry.Number,
		"name":       entry.Name,
		"created_at": entry.CreatedAt,
	})
}

// Delete removes an entry when the form field password matches. A mismatch
// is not reported; the client is redirected to the list either way.
// POST /delete/{no}
func (h *GuestbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	deleted, err := h.service.Delete(r.Context(), number, r.PostForm.Get("password"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.logger.Info("Guestbook delete requested", "no", number, "deleted", deleted)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
