package metric

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock_metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Transaction() Transaction
		Cache() Cache
		Notification() Notification
		Submission() Submission
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Transaction interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementRetries(operation string)
		IncrementFailures(operation string)
	}

	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType string, reason string)
		Size(cacheType string, size int)
	}

	Notification interface {
		Sent(kind string, duration time.Duration)
		Failed(kind string, reason string, duration time.Duration)
		PartialFailure()
	}

	Submission interface {
		Accepted(product string)
		Rejected(reason string)
	}
)
