package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const _namespace = "quoteintake"

var _ Factory = (*prometheusFactory)(nil)

type prometheusFactory struct {
	registry     *prometheus.Registry
	http         *httpMetrics
	transaction  *transactionMetrics
	cache        *cacheMetrics
	notification *notificationMetrics
	submission   *submissionMetrics
}

// NewFactory registers every collector on a private registry, so several
// factories can coexist in one process (tests build one per case).
func NewFactory() Factory {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &prometheusFactory{
		registry:     registry,
		http:         newHTTPMetrics(factory),
		transaction:  newTransactionMetrics(factory),
		cache:        newCacheMetrics(factory),
		notification: newNotificationMetrics(factory),
		submission:   newSubmissionMetrics(factory),
	}
}

func (f *prometheusFactory) HTTP() HTTP {
	return f.http
}

func (f *prometheusFactory) Transaction() Transaction {
	return f.transaction
}

func (f *prometheusFactory) Cache() Cache {
	return f.cache
}

func (f *prometheusFactory) Notification() Notification {
	return f.notification
}

func (f *prometheusFactory) Submission() Submission {
	return f.submission
}

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
