package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/daisydays/daisy-docs-server/internal/metrics"
	"github.com/daisydays/daisy-docs-server/internal/protocol"
)

// CorpusStats reports on the loaded corpus. The docs store implements it.
type CorpusStats interface {
	Len() int
}

// NewRouter builds the HTTP surface: the protocol at POST /rpc (one
// envelope per request body), a health endpoint, prometheus metrics, and a
// landing page.
func NewRouter(d *Dispatcher, store CorpusStats, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())

	r.Get("/", landingHandler)
	r.Get("/health", newHealthHandler(store))
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/rpc", newRPCHandler(d, logger))

	return r
}

// healthResponse is the JSON body of the health endpoint.
type healthResponse struct {
	Status     string `json:"status"`
	Components int    `json:"components"`
	Timestamp  string `json:"timestamp"`
}

// newHealthHandler reports readiness. The corpus is embedded and parsed at
// startup, so an empty store is the only unhealthy state.
func newHealthHandler(store CorpusStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Components: store.Len(),
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		w.Header().Set("Content-Type", "application/json")
		if resp.Components == 0 {
			resp.Status = "unhealthy"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			resp.Status = "healthy"
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// newRPCHandler serves one protocol envelope per POST body. Notifications
// get 204 No Content; every other outcome, including errors, is a 200 with
// an envelope, matching the stdio transport's behavior.
func newRPCHandler(d *Dispatcher, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("malformed rpc body", zap.Error(err))
			writeEnvelope(w, protocol.NewError(protocol.RequestID{}, protocol.NewParseError(err)))
			return
		}

		resp := d.Dispatch(r.Context(), req)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeEnvelope(w, resp)
	}
}

func writeEnvelope(w http.ResponseWriter, resp *protocol.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
