package monitor

import "github.com/prometheus/client_golang/prometheus"

var (
	// FetchRequestsTotal 请求相关
	FetchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_fetch_requests_total",
			Help: "Total number of fetch calls per resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)
	FetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_api_fetch_duration_seconds",
			Help:    "Time taken to complete a fetch call per resource.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"resource"},
	)
	UpstreamStatusTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_upstream_status_total",
			Help: "Total number of upstream responses per resource and status code.",
		},
		[]string{"resource", "status"},
	)

	// NormalizeDroppedTotal 归一化指标
	NormalizeDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_normalize_dropped_total",
			Help: "Total number of malformed list elements dropped during normalization.",
		},
		[]string{"resource"},
	)
	NormalizeAmbiguousTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_normalize_ambiguous_total",
			Help: "Total number of responses whose shape matched no known envelope.",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(
		// 请求指标
		FetchRequestsTotal,
		FetchDuration,
		UpstreamStatusTotal,

		// 归一化指标
		NormalizeDroppedTotal,
		NormalizeAmbiguousTotal,
	)
}
