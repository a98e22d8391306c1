package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mingpanbackend"
)

var (
	AnalysisComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "analysis", "compute_duration_seconds"),
		Help:    "Duration of a full chart analysis computation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{})
	AnalysisCacheCalculated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "analysis", "cache_results"),
		Help: "Analysis requests split by whether the result had to be calculated",
	}, []string{"calculated"})
	WorkerRefreshDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "refresh_duration_seconds"),
		Help: "Duration of the last almanac refresh in seconds",
	}, []string{"worker"})
)
