// Package metrics holds the Prometheus collectors for the HTTP layer and the
// calendar engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service registers.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreated  prometheus.Counter
	bookingsDeclined prometheus.Counter
	slotsAdded       prometheus.Counter
	slotsConsumed    prometheus.Counter
}

// New registers the collectors on the default registry under the given
// service label.
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests processed, by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_bookings_created_total",
			Help:        "Bookings successfully created.",
			ConstLabels: labels,
		}),
		bookingsDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_bookings_declined_total",
			Help:        "Bookings declined by the developer.",
			ConstLabels: labels,
		}),
		slotsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_free_slots_added_total",
			Help:        "Free slots published, single adds and bulk generation combined.",
			ConstLabels: labels,
		}),
		slotsConsumed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_free_slots_consumed_total",
			Help:        "Free slot units consumed by booking creation.",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest records one handled request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// BookingCreated increments the created-bookings counter.
func (m *Metrics) BookingCreated() { m.bookingsCreated.Inc() }

// BookingDeclined increments the declined-bookings counter.
func (m *Metrics) BookingDeclined() { m.bookingsDeclined.Inc() }

// SlotsAdded adds n published free slots.
func (m *Metrics) SlotsAdded(n int) { m.slotsAdded.Add(float64(n)) }

// SlotsConsumed adds n consumed free slot units.
func (m *Metrics) SlotsConsumed(n int) { m.slotsConsumed.Add(float64(n)) }
