package cache

import "time"

type Option func(*options)

type options struct {
	now func() time.Time
}

// Clock replaces time.Now as the source of expiry decisions.
func Clock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
