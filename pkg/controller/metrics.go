package controller

import (
	"net/http"
	"strconv"
	"time"

	"curator/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "http_request_duration_seconds",
	Help:    "HTTP request latency by method and status code.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "code"})

// WithMetrics returns a middleware that records request latency into the
// default Prometheus registry.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		requestDuration.WithLabelValues(r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
