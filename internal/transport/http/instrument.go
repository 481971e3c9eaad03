package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ramu-Prajapati/Study-Point/internal/metrics"
)

// Instrument records request counts and latency per path. The route table
// is flat, so the raw path is a bounded label.
func Instrument(m *metrics.PaymentMetrics, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Requests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		m.LatencyMS.WithLabelValues(r.URL.Path).Observe(float64(time.Since(start).Milliseconds()))
	})
}
