package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpoint_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pitchpoint_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	pitchSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpoint_pitch_submissions_total",
		Help: "Count of pitch submissions by result",
	}, []string{"result"})

	pitchTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpoint_pitch_transitions_total",
		Help: "Count of pitch status transitions by target status and result",
	}, []string{"status", "result"})

	pitchesByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pitchpoint_pitches_by_status",
		Help: "Number of pitches currently in each review status",
	}, []string{"status"})

	leadCaptures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpoint_lead_captures_total",
		Help: "Count of lead-capture submissions by collection and result",
	}, []string{"collection", "result"})

	emailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpoint_emails_sent_total",
		Help: "Count of reservation confirmation emails by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObservePitchSubmission increments the submission counter for the given result.
func ObservePitchSubmission(result string) {
	pitchSubmissions.WithLabelValues(result).Inc()
}

// ObservePitchTransition records a status transition attempt.
func ObservePitchTransition(status, result string) {
	pitchTransitions.WithLabelValues(status, result).Inc()
}

// SetPitchesByStatus sets the gauge for one review status.
func SetPitchesByStatus(status string, count int) {
	if count < 0 {
		count = 0
	}
	pitchesByStatus.WithLabelValues(status).Set(float64(count))
}

// ObserveLeadCapture increments the lead counter for a collection.
func ObserveLeadCapture(collection, result string) {
	leadCaptures.WithLabelValues(collection, result).Inc()
}

// ObserveEmail records a reservation confirmation send attempt.
func ObserveEmail(result string) {
	emailsSent.WithLabelValues(result).Inc()
}
