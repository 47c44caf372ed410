package http

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/linkping/linkping/internal/domain"
	"github.com/linkping/linkping/internal/metrics"
	"github.com/linkping/linkping/internal/service"
)

// Handler holds the HTTP handlers for the redirect service
type Handler struct {
	links service.LinkService
	log   zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(links service.LinkService, log zerolog.Logger) *Handler {
	return &Handler{
		links: links,
		log:   log,
	}
}

// Home handles GET / - readiness text
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("✅ Backend is running!"))
}

// Redirect handles GET /{id} - notifies the link owner and redirects the
// visitor to the stored URL. The notification is sent synchronously so that
// failures are observable, but a failed send never blocks the redirect: the
// visitor is sent on regardless.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, found := h.links.Resolve(r.Context(), id)
	if !found {
		metrics.Redirects.WithLabelValues("not_found").Inc()
		http.Error(w, "Link not found", http.StatusNotFound)
		return
	}

	visit := &domain.VisitorEvent{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Time:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.links.NotifyVisit(r.Context(), record, visit); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("failed to notify link owner")
	}

	metrics.Redirects.WithLabelValues("ok").Inc()
	http.Redirect(w, r, record.TargetURL, http.StatusFound)
}

// clientIP extracts the visitor address, preferring the first entry of
// X-Forwarded-For over the raw connection address
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
