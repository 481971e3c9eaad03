package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PaymentMetrics counts the terminal outcomes of the payment workflow plus
// plain HTTP request accounting.
type PaymentMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersCreated      prometheus.Counter
	PaymentsVerified   prometheus.Counter
	SignatureRejects   prometheus.Counter
	EnrollmentAborts   prometheus.Counter
	ReceiptEmailErrors prometheus.Counter
}

func NewPaymentMetrics() *PaymentMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "orders_created_total",
		Help:      "Gateway orders successfully created.",
	})
	verified := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "payments_verified_total",
		Help:      "Payment callbacks that passed signature verification.",
	})
	rejects := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "signature_rejects_total",
		Help:      "Payment callbacks rejected for a bad or incomplete signature.",
	})
	aborts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "enrollment_aborts_total",
		Help:      "Fulfillment loops aborted on a missing course.",
	})
	receiptErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "studypoint",
		Subsystem: "payments",
		Name:      "receipt_email_errors_total",
		Help:      "Failed payment-receipt email deliveries.",
	})

	prometheus.MustRegister(requests, latency, ordersCreated, verified, rejects, aborts, receiptErrors)
	return &PaymentMetrics{
		Requests:           requests,
		LatencyMS:          latency,
		OrdersCreated:      ordersCreated,
		PaymentsVerified:   verified,
		SignatureRejects:   rejects,
		EnrollmentAborts:   aborts,
		ReceiptEmailErrors: receiptErrors,
	}
}

// Handler serves the scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
