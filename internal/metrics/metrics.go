package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oficina_gateway_calls_total",
		Help: "Spreadsheet gateway calls by operation and result.",
	}, []string{"operation", "result"})

	CacheReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oficina_cache_reads_total",
		Help: "Cache reads by result (hit, miss).",
	}, []string{"result"})

	SyncOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oficina_sync_operations_total",
		Help: "Replayed pending operations by result.",
	}, []string{"result"})

	PendingOperations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "oficina_pending_operations",
		Help: "Pending operations currently queued.",
	})
)
