package metrics

import (
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node API operations.",
	}, []string{"operation", "network", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for API calls to NULS nodes.
type NodeClient struct {
	network model.Network
}

// NewNodeClient constructs a metrics collector for node API calls.
func NewNodeClient(network model.Network) *NodeClient {
	if network == "" {
		network = "unknown"
	}
	return &NodeClient{network: network}
}

// Observe records a single node call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	nodeRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	nodeRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
