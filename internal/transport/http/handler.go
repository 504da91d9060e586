package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"canadata/internal/platform/metrics"
	cErrors "canadata/pkg/clean-errors"
	"canadata/pkg/cleaner"
	"canadata/pkg/platform/httputil"
	"canadata/pkg/raw"
	"canadata/pkg/requestcontext"
)

// Handler is the thin HTTP layer over the cleaners. It owns no business
// logic; each endpoint decodes one value, runs one cleaner, and encodes
// the outcome.
type Handler struct {
	location *cleaner.LocationCleaner
	date     *cleaner.DateCleaner
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New constructs the handler with its dependencies. The location and date
// cleaners are built here with their default configuration.
func New(logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		location: cleaner.NewLocationCleaner(),
		date:     cleaner.NewDateCleaner(),
		logger:   logger,
		metrics:  m,
	}
}

// Register mounts the cleaning endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/clean/postal-code", h.clean("postal_code", func(v raw.Value) (string, error) {
		out, err := cleaner.CleanPostalCode(v)
		return out.String(), err
	}))
	r.Post("/v1/clean/location", h.clean("location", func(v raw.Value) (string, error) {
		out, err := h.location.Clean(v)
		return out.String(), err
	}))
	r.Post("/v1/clean/date", h.clean("date", func(v raw.Value) (string, error) {
		out, err := h.date.Clean(v)
		if err != nil {
			return "", err
		}
		return out.ISO(), nil
	}))
	r.Post("/v1/clean/phone-number", h.clean("phone_number", func(v raw.Value) (string, error) {
		out, err := cleaner.CleanPhoneNumber(v)
		return out.String(), err
	}))
}

// clean adapts one cleaner into an endpoint handler.
func (h *Handler) clean(name string, fn func(raw.Value) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := requestcontext.RequestID(ctx)
		start := requestcontext.Now(ctx)

		var req CleanRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.metrics.ObserveClean(name, "bad_request", start)
			httputil.WriteError(w, err)
			return
		}

		out, err := fn(raw.FromAny(req.Value))
		if err != nil {
			code, _ := cErrors.CodeOf(err)
			h.metrics.ObserveClean(name, string(code), start)
			h.logger.InfoContext(ctx, "value rejected",
				"cleaner", name,
				"code", string(code),
				"request_id", requestID,
			)
			httputil.WriteError(w, err)
			return
		}

		h.metrics.ObserveClean(name, "ok", start)
		h.logger.InfoContext(ctx, "value cleaned",
			"cleaner", name,
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		httputil.WriteJSON(w, http.StatusOK, CleanResponse{Value: out})
	}
}
