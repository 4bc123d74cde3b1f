// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"guestbook/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(guestbookHandler *handler.GuestbookHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	requestLogger := middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	})

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(requestLogger)                              // Log HTTP requests through slog
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Bound request handling time

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Guestbook routes
	r.Get("/", guestbookHandler.Index)
	r.Post("/add", guestbookHandler.Add)
	r.Get("/delete/{no}", guestbookHandler.DeleteForm)
	r.Post("/delete/{no}", guestbookHandler.Delete)

	return r
}
