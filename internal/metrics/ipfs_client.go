package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ipfsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nulsinsight",
		Subsystem: "ipfs_client",
		Name:      "operations_total",
		Help:      "Count of IPFS gateway operations.",
	}, []string{"operation", "status"})
	ipfsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nulsinsight",
		Subsystem: "ipfs_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of IPFS gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// IPFSClient tracks metrics for IPFS content fetches.
type IPFSClient struct{}

func NewIPFSClient() *IPFSClient {
	return &IPFSClient{}
}

func (m IPFSClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ipfsRequestsTotal.WithLabelValues(operation, status).Inc()
	ipfsRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
