package metrics

import (
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "fetch_heights_total",
		Help:      "Count of attempts to fetch the next heights.",
	}, []string{"network", "status"})

	ingesterFetchHeightsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "fetch_heights_duration_seconds",
		Help:      "Duration of fetching the next heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "process_batch_total",
		Help:      "Count of block windows processed.",
	}, []string{"network", "status"})

	ingesterProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a block window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	ingesterProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of reconciling a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nulsinsight",
		Subsystem: "ingester",
		Name:      "last_height",
		Help:      "Height of the last reconciled block.",
	}, []string{"network"})
)

// Ingester tracks metrics for the block ingestion pipeline.
type Ingester struct {
	network model.Network
}

// NewIngester constructs an Ingester metrics collector.
func NewIngester(network model.Network) *Ingester {
	if network == "" {
		network = "unknown"
	}
	return &Ingester{network: network}
}

// ObserveFetchHeights records a fetch attempt outcome and duration.
func (m Ingester) ObserveFetchHeights(err error, started time.Time) {
	status := statusOf(err)
	ingesterFetchHeightsTotal.WithLabelValues(string(m.network), status).Inc()
	ingesterFetchHeightsDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a block window.
func (m Ingester) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusOf(err)
	ingesterProcessBatchTotal.WithLabelValues(string(m.network), status).Inc()
	ingesterProcessBatchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	ingesterProcessBatchSize.WithLabelValues(string(m.network)).Observe(float64(heights))
}

func (m Ingester) ObserveProcessHeight(err error, height uint64, started time.Time) {
	status := statusOf(err)
	ingesterProcessHeightDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		ingesterLastHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}
