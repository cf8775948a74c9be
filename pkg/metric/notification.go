package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ Notification = (*notificationMetrics)(nil)

type notificationMetrics struct {
	sent     *prometheus.CounterVec
	failed   *prometheus.CounterVec
	partial  prometheus.Counter
	duration *prometheus.HistogramVec
}

func newNotificationMetrics(factory promauto.Factory) *notificationMetrics {
	sent := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifications_sent_total",
			Help:      "Total number of notification e-mails accepted by the mail server",
		},
		[]string{"kind"},
	)

	failed := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifications_failed_total",
			Help:      "Total number of notification e-mails that could not be delivered",
		},
		[]string{"kind", "reason"},
	)

	partial := factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifications_partial_failures_total",
			Help:      "Saved quote requests for which at least one notification failed",
		},
	)

	duration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: _namespace,
			Name:      "notification_send_duration_seconds",
			Help:      "Time spent rendering and sending one notification",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind", "outcome"},
	)

	return &notificationMetrics{
		sent:     sent,
		failed:   failed,
		partial:  partial,
		duration: duration,
	}
}

func (m *notificationMetrics) Sent(kind string, duration time.Duration) {
	m.sent.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind, "sent").Observe(duration.Seconds())
}

func (m *notificationMetrics) Failed(kind string, reason string, duration time.Duration) {
	m.failed.WithLabelValues(kind, reason).Inc()
	m.duration.WithLabelValues(kind, "failed").Observe(duration.Seconds())
}

func (m *notificationMetrics) PartialFailure() {
	m.partial.Inc()
}
