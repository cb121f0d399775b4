package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upload outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeStorage    = "storage"
	OutcomeDatabase   = "database"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filedock_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filedock_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filedock_uploads_total",
			Help: "Upload attempts by outcome",
		},
		[]string{"outcome"},
	)

	UploadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "filedock_upload_bytes_total",
			Help: "Bytes written to object storage",
		},
	)

	OrphansRemoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filedock_orphan_cleanups_total",
			Help: "Stored objects deleted after a failed metadata write",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		UploadsTotal,
		UploadBytes,
		OrphansRemoved,
	)
}
