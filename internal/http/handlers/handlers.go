package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"lastgame-service/internal/app/presentation"
	"lastgame-service/internal/dates"
	"lastgame-service/internal/logging"
	"lastgame-service/internal/providers"
	"lastgame-service/internal/refresh"
)

// Handler wires HTTP routes to the presentation service.
type Handler struct {
	svc      *presentation.Service
	logger   *slog.Logger
	statusFn func() refresh.Status
}

// NewHandler constructs a Handler.
func NewHandler(svc *presentation.Service, logger *slog.Logger, statusFn func() refresh.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the refresh loop's health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Presentation resolves a date (or "latest" when absent) to the day's
// completed game and its playable media.
func (h *Handler) Presentation(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	dateParam := r.URL.Query().Get("date")
	logger := loggerFromContext(r, h.logger)

	if dateParam == "" {
		p, err := h.svc.BuildLatest(r.Context())
		if err != nil {
			h.writeUpstreamError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, p, h.logger)
		return
	}

	d, err := dates.ParseISO(dateParam)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	p, err := h.svc.BuildFor(r.Context(), d)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	if logger != nil {
		logger.Info("served presentation",
			slog.String(logging.FieldDate, p.Date),
			slog.Bool("has_game", p.HasGame()),
		)
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// MonthGames returns the month's games grouped by day for the calendar.
func (h *Handler) MonthGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	dateParam := r.URL.Query().Get("date")
	d := h.svc.Resolver().Resolve(time.Now())
	if dateParam != "" {
		parsed, err := dates.ParseISO(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		d = parsed
	}

	month, err := h.svc.MonthGames(r.Context(), d)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, month, h.logger)
}

// NextGame returns the nearest upcoming game with opponent standings when
// available.
func (h *Handler) NextGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	next, err := h.svc.NextGame(r.Context())
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, next, h.logger)
}

// Standings returns the division standings for a season.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
			return
		}
		season = parsed
	}

	resp, err := h.svc.Standings(r.Context(), season)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// writeUpstreamError maps provider failures onto HTTP statuses. A
// superseded request gets the client-closed-request status; anything else
// from upstream is a bad gateway the client may retry.
func (h *Handler) writeUpstreamError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if providers.IsCancellation(err) {
		writeError(w, r, 499, "request cancelled", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	logging.Error(logger, "upstream fetch failed", err, slog.String(logging.FieldPath, r.URL.Path))
	writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
}
