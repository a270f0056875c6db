package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	SocialPublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_publish_total",
			Help: "Social publish attempts by platform and result",
		},
		[]string{"platform", "result"},
	)

	CaptionFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "caption_fallback_total",
			Help: "Number of times static captions replaced model output",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		SocialPublishTotal,
		CaptionFallbackTotal,
	)
}
