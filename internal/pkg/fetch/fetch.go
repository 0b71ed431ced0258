package fetch

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/etuitionbd/webclient/internal/app/models"
)

// ErrDisabled is returned by Do when a query's Enabled predicate is false.
// Callers treat it as "no data yet", not as a failure.
var ErrDisabled = errors.New("fetch: query disabled")

// Cache is the shared read-through cache for remote data. Entries are keyed
// by logical query name plus parameters, carry a per-query TTL, and are
// evicted early only by mutation invalidation. Concurrent requests for the
// same key are collapsed into one network call.
type Cache struct {
	store  *gocache.Cache
	group  singleflight.Group
	logger *zap.Logger
	onHit  func(ctx context.Context)
	onMiss func(ctx context.Context)
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithObserver registers callbacks fired on every cache hit and miss, for
// feeding metrics instruments. Either may be nil.
func WithObserver(onHit, onMiss func(ctx context.Context)) CacheOption {
	return func(c *Cache) {
		c.onHit = onHit
		c.onMiss = onMiss
	}
}

func NewCache(defaultTTL, cleanupInterval time.Duration, logger *zap.Logger, opts ...CacheOption) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{
		store:  gocache.New(defaultTTL, cleanupInterval),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) hit(ctx context.Context) {
	if c.onHit != nil {
		c.onHit(ctx)
	}
}

func (c *Cache) miss(ctx context.Context) {
	if c.onMiss != nil {
		c.onMiss(ctx)
	}
}

// Query describes one cached read. Fn performs the actual backend call;
// the cache never knows about transports.
type Query[T any] struct {
	// Key identifies the query and its parameters, e.g. "tuitions/list?class=9".
	Key string
	// TTL overrides the cache default when positive.
	TTL time.Duration
	// Retries is the number of re-attempts after a failed Fn. Auth errors
	// are never retried; the token will not get fresher on its own.
	Retries int
	// Enabled gates execution. A nil predicate means always enabled.
	Enabled func() bool
	Fn      func(ctx context.Context) (T, error)
}

// Do resolves a query: cache hit, or one deduplicated Fn call whose result
// is stored under the key. Errors are never cached.
func Do[T any](ctx context.Context, c *Cache, q Query[T]) (T, error) {
	var zero T
	if q.Enabled != nil && !q.Enabled() {
		return zero, ErrDisabled
	}

	if cached, ok := c.store.Get(q.Key); ok {
		if value, ok := cached.(T); ok {
			c.hit(ctx)
			return value, nil
		}
		// A type collision on a key is a programming error; drop the entry
		// and refetch rather than serving the wrong shape.
		c.logger.Warn("Cache entry type mismatch, evicting", zap.String("key", q.Key))
		c.store.Delete(q.Key)
	}
	c.miss(ctx)

	result, err, _ := c.group.Do(q.Key, func() (any, error) {
		// Re-check under the flight lock: a sibling may have just filled it.
		if cached, ok := c.store.Get(q.Key); ok {
			if value, ok := cached.(T); ok {
				return value, nil
			}
		}

		value, err := runWithRetries(ctx, q)
		if err != nil {
			return nil, err
		}

		ttl := q.TTL
		if ttl <= 0 {
			ttl = gocache.DefaultExpiration
		}
		c.store.Set(q.Key, value, ttl)
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

func runWithRetries[T any](ctx context.Context, q Query[T]) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= q.Retries; attempt++ {
		value, err := q.Fn(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err
		if errors.Is(err, models.ErrUnauthenticated) || errors.Is(err, models.ErrForbidden) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	return zero, lastErr
}

// Mutation describes one write to the backend. Mutations are never retried
// and never cached; on success the named query keys are evicted so the next
// read observes the new state.
type Mutation[T any] struct {
	Fn          func(ctx context.Context) (T, error)
	Invalidates []string
}

// Run executes a mutation and, on success, invalidates its query keys.
func Run[T any](ctx context.Context, c *Cache, m Mutation[T]) (T, error) {
	value, err := m.Fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Invalidate(m.Invalidates...)
	return value, nil
}

// Invalidate evicts the given keys. Missing keys are ignored.
func (c *Cache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.store.Delete(key)
	}
}

// InvalidatePrefix evicts every key under a prefix, for mutations whose
// effect spans parameterized variants of one query.
func (c *Cache) InvalidatePrefix(prefix string) {
	for key := range c.store.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.store.Delete(key)
		}
	}
}

// Flush drops every entry. Used when the session changes identity.
func (c *Cache) Flush() {
	c.store.Flush()
}
