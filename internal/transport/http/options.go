package httpt

import (
	"time"

	"github.com/ulule/limiter/v3"
)

type Option func(*QuoteHandler)

// AdminAccount enables the basic-auth protected admin routes.
func AdminAccount(username, password string) Option {
	return func(h *QuoteHandler) {
		if username == "" {
			return
		}
		h.admin = map[string]string{username: password}
	}
}

func AllowedOrigins(origins []string) Option {
	return func(h *QuoteHandler) {
		h.allowedOrigins = origins
	}
}

// RateLimit caps quote submissions per client IP to limit per period.
func RateLimit(limit int64, period time.Duration) Option {
	return func(h *QuoteHandler) {
		h.limiter = newMemoryLimiter(limiter.Rate{Limit: limit, Period: period})
	}
}

func MaxBodyBytes(n int64) Option {
	return func(h *QuoteHandler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}
