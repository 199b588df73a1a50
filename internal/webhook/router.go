package webhook

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// NewRouter mounts the relay function, health check and metrics
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	router.HandleFunc("/submission-created", h.HandleSubmission)
	router.HandleFunc("/.netlify/functions/submission-created", h.HandleSubmission)
	router.Get("/health", h.HandleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// requestLogger tags every request with an ID and logs its outcome
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("Handled request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
