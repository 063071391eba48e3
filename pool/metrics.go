package pool

import "github.com/prometheus/client_golang/prometheus"

var (
	acquireTotal prometheus.Counter
	releaseTotal prometheus.Counter
	rejectTotal  *prometheus.CounterVec
	pendingKeys  prometheus.Gauge

	limitLabel   = prometheus.Labels{"reason": "limit"}
	counterLabel = prometheus.Labels{"reason": "counter"}
)

func init() {
	acquireTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pendlimit_acquire_total",
		Help: "Total number of acquired pending slots",
	})

	releaseTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pendlimit_release_total",
		Help: "Total number of released pending slots",
	})

	rejectTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pendlimit_reject_total",
			Help: "Number of rejected operations. `limit` - per-key limit reached, `counter` - counter range violated",
		},
		[]string{"reason"},
	)

	pendingKeys = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pendlimit_pending_keys",
		Help: "Number of keys with at least one pending item",
	})

	prometheus.MustRegister(acquireTotal, releaseTotal, rejectTotal, pendingKeys)
}
