package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	SubfetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stockscope",
			Subsystem: "aggregator",
			Name:      "subfetch_duration_seconds",
			Help:      "Latency of aggregation sub-fetches",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	SubfetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockscope",
			Subsystem: "aggregator",
			Name:      "subfetch_errors_total",
			Help:      "Failed sub-fetches by source",
		},
		[]string{"source"},
	)

	SearchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockscope",
			Subsystem: "search",
			Name:      "errors_total",
			Help:      "Ticker search errors by kind",
		},
		[]string{"kind"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(SubfetchLatency, SubfetchErrors, SearchErrors)
	})
}
