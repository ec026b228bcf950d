// Package metrics exposes the Prometheus instrumentation shared by the
// service binaries: an HTTP middleware plus counters for the checkout event
// pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eshop_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eshop_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "path"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eshop_checkout_events_published_total",
			Help: "Checkout integration events published, by exchange and outcome.",
		},
		[]string{"exchange", "outcome"},
	)

	eventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eshop_checkout_events_consumed_total",
			Help: "Checkout integration events consumed, by queue and outcome.",
		},
		[]string{"queue", "outcome"},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eshop_orders_created_total",
			Help: "Orders created from consumed checkout events.",
		},
	)
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request counts and latencies for every route.
func HTTPMiddleware(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			httpRequestsTotal.WithLabelValues(
				service, r.Method, r.URL.Path, strconv.Itoa(sw.status),
			).Inc()
			httpRequestDuration.WithLabelValues(
				service, r.Method, r.URL.Path,
			).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RecordPublish counts a publish attempt against an exchange.
func RecordPublish(exchange string, ok bool) {
	eventsPublished.WithLabelValues(exchange, outcome(ok)).Inc()
}

// RecordConsume counts a consumed delivery against a queue.
func RecordConsume(queue string, ok bool) {
	eventsConsumed.WithLabelValues(queue, outcome(ok)).Inc()
}

// RecordOrderCreated counts an order successfully created by a consumer.
func RecordOrderCreated() {
	ordersCreated.Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
