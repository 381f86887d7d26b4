package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	PostsCreatedTotal    prometheus.Counter
	CommentsCreatedTotal prometheus.Counter
	ApprovalsTotal       prometheus.Counter
	MediaUploadsTotal    prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			PostsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "posts_created_total",
				Help: "Total number of posts created",
			}),
			CommentsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "comments_created_total",
				Help: "Total number of comments created",
			}),
			ApprovalsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "post_approvals_total",
				Help: "Total number of post approvals",
			}),
			MediaUploadsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "media_uploads_total",
					Help: "Total number of media uploads by kind",
				},
				[]string{"kind"},
			),
		}
	})
	return instance
}

// Get returns the metrics instance, initializing it if needed
func Get() *Metrics {
	return Initialize()
}
