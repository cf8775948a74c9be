package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ Cache = (*cacheMetrics)(nil)

type cacheMetrics struct {
	lookups   *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

func newCacheMetrics(factory promauto.Factory) *cacheMetrics {
	return &cacheMetrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by cache name and result (hit or miss)",
		}, []string{"cache", "result"}),
		evictions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries removed from the cache by reason",
		}, []string{"cache", "reason"}),
		entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Entries currently held by the cache",
		}, []string{"cache"}),
	}
}

func (m *cacheMetrics) Hit(cache string) {
	m.lookups.WithLabelValues(cache, "hit").Inc()
}

func (m *cacheMetrics) Miss(cache string) {
	m.lookups.WithLabelValues(cache, "miss").Inc()
}

func (m *cacheMetrics) Eviction(cache string, reason string) {
	m.evictions.WithLabelValues(cache, reason).Inc()
}

func (m *cacheMetrics) Size(cache string, size int) {
	m.entries.WithLabelValues(cache).Set(float64(size))
}
