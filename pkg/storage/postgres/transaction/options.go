package transaction

import (
	"errors"
	"time"
)

type Option func(*manager)

// MaxAttempts counts the first try; 1 disables retries.
func MaxAttempts(attempts int) Option {
	return func(m *manager) {
		m.maxAttempts = attempts
	}
}

func BaseRetryDelay(delay time.Duration) Option {
	return func(m *manager) {
		m.baseRetryDelay = delay
	}
}

func MaxRetryDelay(delay time.Duration) Option {
	return func(m *manager) {
		m.maxRetryDelay = delay
	}
}

func (m *manager) validate() error {
	switch {
	case m.db == nil:
		return errors.New("nil transaction beginner")
	case m.maxAttempts <= 0:
		return errors.New("invalid maxAttempts: must be > 0")
	case m.baseRetryDelay <= 0:
		return errors.New("invalid base retry delay: must be > 0")
	case m.maxRetryDelay <= 0:
		return errors.New("invalid max retry delay: must be > 0")
	case m.baseRetryDelay > m.maxRetryDelay:
		return errors.New("baseRetryDelay cannot exceed maxRetryDelay")
	}
	return nil
}
