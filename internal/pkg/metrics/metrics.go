package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forest_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forest_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forest_api_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	// Document store
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forest_store_operation_duration_seconds",
			Help:    "Duration of document store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forest_store_operation_errors_total",
			Help: "Total number of failed document store operations",
		},
		[]string{"operation", "collection"},
	)

	// Files
	GeneratedFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forest_generated_files_total",
			Help: "Reports, exports and photos written to the upload directory",
		},
		[]string{"kind"},
	)

	// Events
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forest_events_published_total",
			Help: "Domain events published to the stream",
		},
		[]string{"type", "result"},
	)
)

func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveStoreOperation пишет длительность операции и, при ошибке, счётчик ошибок
func ObserveStoreOperation(operation, collection string, start time.Time, err error) {
	StoreOperationDuration.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, collection).Inc()
	}
}

func RecordGeneratedFile(kind string) {
	GeneratedFilesTotal.WithLabelValues(kind).Inc()
}

func RecordEventPublished(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}
