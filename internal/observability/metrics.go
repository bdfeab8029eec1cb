package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	intakeSubmissionsTotal   *prometheus.CounterVec
	backofficeRequestsTotal  *prometheus.CounterVec
	backofficeLatencySeconds *prometheus.HistogramVec
	backofficeErrorsTotal    *prometheus.CounterVec
	uploadRequestsTotal      *prometheus.CounterVec
	uploadRejectedTotal      *prometheus.CounterVec
	uploadLatencySeconds     prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		intakeSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Contact/application intake submissions by outcome.",
		}, []string{"outcome"})

		backofficeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_requests_total",
			Help: "Total number of backoffice API requests served.",
		}, []string{"method", "route", "status"})

		backofficeLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_latency_seconds",
			Help:    "Latency distribution for backoffice API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		backofficeErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_errors_total",
			Help: "Total number of error responses returned by backoffice endpoints.",
		}, []string{"method", "route", "status"})

		uploadRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "media_upload_requests_total",
			Help: "Accepted media uploads by detected type.",
		}, []string{"type"})

		uploadRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "media_upload_rejected_total",
			Help: "Rejected media uploads by reason.",
		}, []string{"reason"})

		uploadLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "media_upload_latency_seconds",
			Help:    "Latency distribution for media upload processing.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		})

		prometheus.MustRegister(
			intakeSubmissionsTotal,
			backofficeRequestsTotal,
			backofficeLatencySeconds,
			backofficeErrorsTotal,
			uploadRequestsTotal,
			uploadRejectedTotal,
			uploadLatencySeconds,
		)
	})
}

// IntakeSubmissions exposes the intake outcome counter.
func IntakeSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return intakeSubmissionsTotal
}

// BackofficeRequests exposes the counter for backoffice requests.
func BackofficeRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return backofficeRequestsTotal
}

// BackofficeLatency exposes the latency histogram for backoffice requests.
func BackofficeLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return backofficeLatencySeconds
}

// BackofficeErrors exposes the counter for backoffice error responses.
func BackofficeErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return backofficeErrorsTotal
}

// UploadRequests exposes the accepted upload counter.
func UploadRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadRequestsTotal
}

// UploadRejected exposes the rejected upload counter.
func UploadRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadRejectedTotal
}

// UploadLatency exposes the upload latency histogram.
func UploadLatency() prometheus.Histogram {
	RegisterMetrics()
	return uploadLatencySeconds
}
