package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ Submission = (*submissionMetrics)(nil)

type submissionMetrics struct {
	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func newSubmissionMetrics(factory promauto.Factory) *submissionMetrics {
	accepted := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "quote_requests_accepted_total",
			Help:      "Total number of persisted quote requests by product",
		},
		[]string{"product"},
	)

	rejected := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "quote_requests_rejected_total",
			Help:      "Total number of rejected quote requests by reason",
		},
		[]string{"reason"},
	)

	return &submissionMetrics{
		accepted: accepted,
		rejected: rejected,
	}
}

func (m *submissionMetrics) Accepted(product string) {
	m.accepted.WithLabelValues(product).Inc()
}

func (m *submissionMetrics) Rejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}
