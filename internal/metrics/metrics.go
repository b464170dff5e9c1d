// Package metrics registers prometheus collectors for the dispatcher and
// the HTTP transport.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "daisydocs",
			Name:      "dispatch_duration_seconds",
			Help:      "Request dispatch duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "tool", "status"},
	)

	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daisydocs",
			Name:      "dispatch_total",
			Help:      "Total number of dispatched requests",
		},
		[]string{"method", "tool", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "daisydocs",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(dispatchDuration)
	prometheus.MustRegister(dispatchTotal)
	prometheus.MustRegister(httpRequestDuration)
}

// ObserveDispatch records one dispatched request. tool is empty for
// non-invocation methods; status is "ok" or "error".
func ObserveDispatch(method, tool, status string, d time.Duration) {
	dispatchDuration.WithLabelValues(method, tool, status).Observe(d.Seconds())
	dispatchTotal.WithLabelValues(method, tool, status).Inc()
}

// Middleware records HTTP request duration by chi route pattern.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = "unknown"
			}
			httpRequestDuration.WithLabelValues(
				r.Method, path, strconv.Itoa(ww.status),
			).Observe(time.Since(start).Seconds())
		})
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}
