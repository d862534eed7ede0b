// Package metrics holds the Prometheus collectors exported by settleup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing,
// which keeps the CLI and tests free of registry plumbing.
type Metrics struct {
	RPCRequests            *prometheus.CounterVec
	RPCDuration            *prometheus.HistogramVec
	SettlementTransactions prometheus.Histogram
	PrecisionWarnings      prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "settleup",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "settleup",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		SettlementTransactions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "settleup",
			Name:      "settlement_transactions",
			Help:      "Number of transfers proposed per settlement.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		PrecisionWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "settleup",
			Name:      "precision_warnings_total",
			Help:      "Settlements whose balances did not sum to zero.",
		}),
	}
	reg.MustRegister(m.RPCRequests, m.RPCDuration, m.SettlementTransactions, m.PrecisionWarnings)
	return m
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, seconds float64) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(seconds)
}

// ObserveSettlement records the size of a proposed settlement and whether it carried a warning.
func (m *Metrics) ObserveSettlement(transactions int, warned bool) {
	if m == nil {
		return
	}
	m.SettlementTransactions.Observe(float64(transactions))
	if warned {
		m.PrecisionWarnings.Inc()
	}
}
