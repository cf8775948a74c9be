package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"quoteintake/pkg/logger"
	"quoteintake/pkg/metric"
)

const (
	_reasonCapacity = "capacity"
	_reasonExpired  = "expired"
	_reasonPurge    = "purge"
)

var _ Cache[string, any] = (*LRUCache[string, any])(nil)

type LRUCache[K comparable, V any] struct {
	mu      sync.Mutex
	items   map[K]*list.Element
	order   *list.List
	log     logger.Logger
	metrics metric.Cache
	now     func() time.Time

	name      string
	capacity  int
	onEvicted func(key K, value V)

	stop chan struct{}
	done chan struct{}
}

type item[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

func (it *item[K, V]) expired(now time.Time) bool {
	return !it.expiresAt.IsZero() && now.After(it.expiresAt)
}

// NewLRUCache builds a cache whose metrics are labelled with name.
func NewLRUCache[K comparable, V any](
	name string,
	capacity int,
	log logger.Logger,
	metrics metric.Cache,
	opts ...Option,
) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache.NewLRUCache: capacity must be positive, got %d", capacity)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache[K, V]{
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		log:      log,
		metrics:  metrics,
		now:      o.now,
		name:     name,
		capacity: capacity,
	}, nil
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	elem, ok := c.items[key]
	if !ok {
		c.metrics.Miss(c.name)
		return zero, false
	}

	it := elem.Value.(*item[K, V])
	if it.expired(c.now()) {
		c.evict(elem, _reasonExpired)
		c.metrics.Miss(c.name)
		return zero, false
	}

	c.order.MoveToFront(elem)
	c.metrics.Hit(c.name)
	return it.value, true
}

func (c *LRUCache[K, V]) Put(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	if elem, ok := c.items[key]; ok {
		it := elem.Value.(*item[K, V])
		it.value = value
		it.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.capacity {
		c.evict(c.order.Back(), _reasonCapacity)
	}

	c.items[key] = c.order.PushFront(&item[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.metrics.Size(c.name, c.order.Len())
}

// Has reports whether key holds an unexpired value without touching recency.
func (c *LRUCache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	return ok && !elem.Value.(*item[K, V]).expired(c.now())
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.order.Len() > 0 {
		c.evict(c.order.Back(), _reasonPurge)
	}
}

// StartCleanup removes expired entries every interval until StopCleanup.
// Calling it again restarts the sweeper with the new interval.
func (c *LRUCache[K, V]) StartCleanup(interval time.Duration) {
	c.StopCleanup()

	stop, done := make(chan struct{}), make(chan struct{})

	c.mu.Lock()
	c.stop, c.done = stop, done
	c.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-stop:
				return
			}
		}
	}()
}

// StopCleanup stops the sweeper and waits for it to exit.
func (c *LRUCache[K, V]) StopCleanup() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// SetOnEvicted registers a callback run under the cache lock; it must not
// call back into the cache.
func (c *LRUCache[K, V]) SetOnEvicted(onEvicted func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvicted = onEvicted
}

func (c *LRUCache[K, V]) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*item[K, V]).expired(now) {
			c.evict(elem, _reasonExpired)
			removed++
		}
		elem = prev
	}

	if removed > 0 {
		c.log.Debugw("expired cache entries removed",
			"cache", c.name,
			"removed", removed,
			"remaining", c.order.Len(),
		)
	}
}

// evict must be called with mu held.
func (c *LRUCache[K, V]) evict(elem *list.Element, reason string) {
	it := c.order.Remove(elem).(*item[K, V])
	delete(c.items, it.key)

	c.metrics.Eviction(c.name, reason)
	c.metrics.Size(c.name, c.order.Len())

	if c.onEvicted != nil {
		c.onEvicted(it.key, it.value)
	}
}
