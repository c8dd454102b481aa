package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classorder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classorder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classorder_bookings_total",
			Help: "Total number of booking writes",
		},
		[]string{"operation"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classorder_booking_conflicts_total",
			Help: "Total number of rejected slot conflicts",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classorder_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"role", "status"},
	)

	UploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classorder_uploads_total",
			Help: "Total number of avatar uploads",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(operation string) {
	BookingsTotal.WithLabelValues(operation).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordLogin(role, status string) {
	LoginsTotal.WithLabelValues(role, status).Inc()
}

func RecordUpload() {
	UploadsTotal.Inc()
}
