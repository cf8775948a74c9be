package cache_test

import (
	"sync"
	"testing"
	"time"

	"quoteintake/pkg/cache"
	"quoteintake/pkg/logger"
	mock_metric "quoteintake/pkg/metric/mock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(t *testing.T, capacity int, clock *fakeClock) *cache.LRUCache[int64, string] {
	t.Helper()

	ctrl := gomock.NewController(t)
	metrics := mock_metric.NewMockCache(ctrl)
	metrics.EXPECT().Hit("quote").AnyTimes()
	metrics.EXPECT().Miss("quote").AnyTimes()
	metrics.EXPECT().Eviction("quote", gomock.Any()).AnyTimes()
	metrics.EXPECT().Size("quote", gomock.Any()).AnyTimes()

	c, err := cache.NewLRUCache[int64, string]("quote", capacity, logger.NewNop(), metrics,
		cache.Clock(clock.Now))
	require.NoError(t, err)
	return c
}

type step struct {
	put   bool
	key   int64
	value string
	ttl   time.Duration
	wait  time.Duration
}

func TestLRUCache_GetPut(t *testing.T) {
	testCases := []struct {
		desc     string
		capacity int
		steps    []step
		present  map[int64]string
		absent   []int64
	}{
		{
			desc:     "stores and returns values",
			capacity: 2,
			steps: []step{
				{put: true, key: 1, value: "caneca"},
				{put: true, key: 2, value: "caderno"},
			},
			present: map[int64]string{1: "caneca", 2: "caderno"},
		},
		{
			desc:     "evicts least recently used",
			capacity: 2,
			steps: []step{
				{put: true, key: 1, value: "a"},
				{put: true, key: 2, value: "b"},
				{key: 1},
				{put: true, key: 3, value: "c"},
			},
			present: map[int64]string{1: "a", 3: "c"},
			absent:  []int64{2},
		},
		{
			desc:     "overwrite keeps a single entry",
			capacity: 2,
			steps: []step{
				{put: true, key: 1, value: "old"},
				{put: true, key: 1, value: "new"},
				{put: true, key: 2, value: "b"},
			},
			present: map[int64]string{1: "new", 2: "b"},
		},
		{
			desc:     "entry expires after ttl",
			capacity: 2,
			steps: []step{
				{put: true, key: 1, value: "short", ttl: time.Second},
				{put: true, key: 2, value: "forever"},
				{wait: 2 * time.Second},
			},
			present: map[int64]string{2: "forever"},
			absent:  []int64{1},
		},
		{
			desc:     "overwrite refreshes ttl",
			capacity: 1,
			steps: []step{
				{put: true, key: 1, value: "v1", ttl: time.Second},
				{wait: 800 * time.Millisecond},
				{put: true, key: 1, value: "v2", ttl: time.Second},
				{wait: 800 * time.Millisecond},
			},
			present: map[int64]string{1: "v2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
			c := newTestCache(t, tc.capacity, clock)

			for _, s := range tc.steps {
				switch {
				case s.wait > 0:
					clock.Advance(s.wait)
				case s.put:
					c.Put(s.key, s.value, s.ttl)
				default:
					c.Get(s.key)
				}
			}

			for key, want := range tc.present {
				got, ok := c.Get(key)
				require.True(t, ok, "key %d", key)
				require.Equal(t, want, got)
			}
			for _, key := range tc.absent {
				_, ok := c.Get(key)
				require.False(t, ok, "key %d", key)
				require.False(t, c.Has(key))
			}
		})
	}
}

func TestLRUCache_HasDoesNotTouchRecency(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := newTestCache(t, 2, clock)

	c.Put(1, "a", 0)
	c.Put(2, "b", 0)
	require.True(t, c.Has(1))

	c.Put(3, "c", 0)

	require.False(t, c.Has(1))
	require.True(t, c.Has(2))
	require.True(t, c.Has(3))
}

func TestLRUCache_OnEvicted(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := newTestCache(t, 2, clock)

	var evicted []int64
	c.SetOnEvicted(func(key int64, _ string) {
		evicted = append(evicted, key)
	})

	c.Put(1, "a", 0)
	c.Put(2, "b", time.Second)
	c.Put(3, "c", 0)
	require.Equal(t, []int64{1}, evicted)

	clock.Advance(time.Minute)
	_, ok := c.Get(2)
	require.False(t, ok)
	require.Equal(t, []int64{1, 2}, evicted)

	c.Purge()
	require.Equal(t, []int64{1, 2, 3}, evicted)
	require.Zero(t, c.Len())
}

func TestLRUCache_Cleanup(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := newTestCache(t, 4, clock)

	c.Put(1, "expiring", time.Second)
	c.Put(2, "expiring", time.Second)
	c.Put(3, "kept", 0)
	clock.Advance(time.Minute)

	c.StartCleanup(5 * time.Millisecond)
	defer c.StopCleanup()

	require.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
	require.True(t, c.Has(3))
}

func TestLRUCache_StopCleanupIsIdempotent(t *testing.T) {
	c := newTestCache(t, 1, &fakeClock{now: time.Now()})

	c.StopCleanup()
	c.StartCleanup(time.Millisecond)
	c.StartCleanup(time.Millisecond)
	c.StopCleanup()
	c.StopCleanup()
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := newTestCache(t, 64, &fakeClock{now: time.Now()})

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := int64(w*1000 + i%100)
				c.Put(key, "v", time.Minute)
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 64)
}

func TestNewLRUCache_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := cache.NewLRUCache[int64, string]("quote", capacity, logger.NewNop(), nil)
		require.Error(t, err)
	}
}
