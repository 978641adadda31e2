package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes used as the "result" label
const (
	BookingCreated          = "created"
	BookingSlotConflict     = "slot_conflict"
	BookingInvalidSelection = "invalid_selection"
	BookingValidationError  = "validation_error"
	BookingError            = "error"
)

// Metrics holds every collector exported by the service.
// All methods are nil-safe so components can run with metrics disabled.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	BookingsTotal        *prometheus.CounterVec
	CancellationsTotal   prometheus.Counter
	NotificationAttempts *prometheus.CounterVec
	NotificationsTotal   *prometheus.CounterVec
}

// New registers collectors in reg with a constant "service" label.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		CancellationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_cancellations_total",
			Help:        "Cancelled bookings",
			ConstLabels: constLabels,
		}),
		NotificationAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notification_attempts_total",
			Help:        "Confirmation delivery attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Confirmation notifications by final outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTP records one finished request
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBooking records a booking attempt outcome
func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveCancellation() {
	if m == nil {
		return
	}
	m.CancellationsTotal.Inc()
}

// ObserveNotificationAttempt records a single delivery attempt
func (m *Metrics) ObserveNotificationAttempt(success bool) {
	if m == nil {
		return
	}
	m.NotificationAttempts.WithLabelValues(resultLabel(success)).Inc()
}

// ObserveNotification records the final outcome after all attempts
func (m *Metrics) ObserveNotification(delivered bool) {
	if m == nil {
		return
	}
	outcome := "delivered"
	if !delivered {
		outcome = "failed"
	}
	m.NotificationsTotal.WithLabelValues(outcome).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
