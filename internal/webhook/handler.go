package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hustlex/internal/config"
	"hustlex/internal/domain"
	"hustlex/internal/metrics"

	"go.uber.org/zap"
)

// MaxBodyBytes caps the submission body
const MaxBodyBytes = 1 << 20

// Relayer forwards a submission to the channel
type Relayer interface {
	Relay(submission domain.JobSubmission, siteURL string) error
}

// Handler serves the submission-created function
type Handler struct {
	cfg     *config.RelayConfig
	relayer Relayer
	logger  *zap.Logger
}

// NewHandler creates a new webhook handler; relayer may be nil when cfg is not ready
func NewHandler(cfg *config.RelayConfig, relayer Relayer, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		relayer: relayer,
		logger:  logger,
	}
}

type relayResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HandleSubmission relays one form submission to the channel
func (h *Handler) HandleSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		metrics.RecordSubmission("ignored")
		writeText(w, http.StatusOK, "Function expects a POST")
		return
	}

	if !h.cfg.Ready() || h.relayer == nil {
		h.logger.Error("Relay is not configured")
		metrics.RecordSubmission("misconfigured")
		writeText(w, http.StatusInternalServerError, "BOT_TOKEN or CHANNEL_ID env vars not set")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Request body too large", zap.Int64("limit", tooLarge.Limit))
			metrics.RecordSubmission("invalid")
			writeText(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.logger.Warn("Failed to read request body", zap.Error(err))
		metrics.RecordSubmission("invalid")
		writeText(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var event domain.SubmissionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("Invalid JSON body", zap.Error(err))
		metrics.RecordSubmission("invalid")
		writeText(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var submission domain.JobSubmission
	if event.Data != nil {
		submission = *event.Data
	}

	if err := h.relayer.Relay(submission, h.siteURL(r)); err != nil {
		metrics.RecordSubmission("failed")
		writeJSON(w, http.StatusInternalServerError, relayResponse{OK: false, Error: err.Error()})
		return
	}

	metrics.RecordSubmission("sent")
	writeJSON(w, http.StatusOK, relayResponse{OK: true})
}

// HandleHealth reports liveness
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// siteURL prefers the configured website and falls back to the request origin
func (h *Handler) siteURL(r *http.Request) string {
	if h.cfg.WebsiteURL != "" {
		return h.cfg.WebsiteURL
	}

	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
