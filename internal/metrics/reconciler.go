package metrics

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "transactions_total",
		Help:      "Count of reconciled transactions by type.",
	}, []string{"network", "tx_type", "status"})

	reconcileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "transaction_duration_seconds",
		Help:      "Duration of reconciling a single transaction.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"network", "status"})

	unresolvedOriginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "unresolved_origins_total",
		Help:      "Count of inputs whose origin transaction was not found.",
	}, []string{"network"})

	duplicateTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "duplicate_transactions_total",
		Help:      "Count of transactions skipped because they were already persisted.",
	}, []string{"network"})

	spendUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "spend_updates_total",
		Help:      "Count of output spend updates committed.",
	}, []string{"network", "status"})

	sweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of unlocking matured time-locked outputs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	sweepHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nulsinsight",
		Subsystem: "reconciler",
		Name:      "sweep_height",
		Help:      "Height of the last successful sweep.",
	}, []string{"network"})
)

// Reconciler tracks metrics for ledger reconciliation.
type Reconciler struct {
	network model.Network
}

// NewReconciler constructs a Reconciler metrics collector.
func NewReconciler(network model.Network) *Reconciler {
	if network == "" {
		network = "unknown"
	}
	return &Reconciler{network: network}
}

// ObserveReconcile records one transaction reconciliation.
func (m Reconciler) ObserveReconcile(err error, txType uint16, started time.Time) {
	status := statusOf(err)
	reconcileTotal.WithLabelValues(string(m.network), strconv.Itoa(int(txType)), status).Inc()
	reconcileDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

func (m Reconciler) ObserveUnresolvedOrigin() {
	unresolvedOriginsTotal.WithLabelValues(string(m.network)).Inc()
}

func (m Reconciler) ObserveDuplicate() {
	duplicateTransactionsTotal.WithLabelValues(string(m.network)).Inc()
}

// ObserveSpendUpdates counts a bulk spend commit by its number of updates.
func (m Reconciler) ObserveSpendUpdates(count int, err error) {
	spendUpdatesTotal.WithLabelValues(string(m.network), statusOf(err)).Add(float64(count))
}

// ObserveSweep records a sweep and, on success, its height.
func (m Reconciler) ObserveSweep(err error, height uint64, started time.Time) {
	sweepDuration.WithLabelValues(string(m.network), statusOf(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		sweepHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}
