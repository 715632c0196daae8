package lookup

import (
	"context"
	"io"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/LeJamon/goXRPLwallet/internal/config"
	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
)

const reservesKey = "reserves"

// Cached keeps recent lookups for a TTL. Concurrent misses on the same key
// share one request. Failures are not cached.
type Cached struct {
	next explain.LedgerLookup
	log  *zap.Logger

	accounts *expirable.LRU[string, *explain.AccountInfo]
	lines    *expirable.LRU[string, []explain.TrustLine]
	reserves *expirable.LRU[string, *explain.Reserves]

	group singleflight.Group
}

var _ explain.LedgerLookup = (*Cached)(nil)

// NewCached wraps next in a cache of size entries per kind of lookup.
func NewCached(next explain.LedgerLookup, size int, ttl time.Duration, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{
		next:     next,
		log:      log,
		accounts: expirable.NewLRU[string, *explain.AccountInfo](size, nil, ttl),
		lines:    expirable.NewLRU[string, []explain.TrustLine](size, nil, ttl),
		reserves: expirable.NewLRU[string, *explain.Reserves](1, nil, ttl),
	}
}

func load[V any](ctx context.Context, c *Cached, cache *expirable.LRU[string, V], key string, fetch func(context.Context) (V, error)) (V, error) {
	if v, ok := cache.Get(key); ok {
		c.log.Debug("cache hit", zap.String("key", key))
		return v, nil
	}
	v, err, shared := c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		cache.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	c.log.Debug("cache miss", zap.String("key", key), zap.Bool("shared", shared))
	return v.(V), nil
}

// AccountInfo implements explain.LedgerLookup.
func (c *Cached) AccountInfo(ctx context.Context, account string) (*explain.AccountInfo, error) {
	return load(ctx, c, c.accounts, "account_info:"+account, func(ctx context.Context) (*explain.AccountInfo, error) {
		return c.next.AccountInfo(ctx, account)
	})
}

// TrustLines implements explain.LedgerLookup.
func (c *Cached) TrustLines(ctx context.Context, account string) ([]explain.TrustLine, error) {
	return load(ctx, c, c.lines, "account_lines:"+account, func(ctx context.Context) ([]explain.TrustLine, error) {
		return c.next.TrustLines(ctx, account)
	})
}

// Reserves implements explain.LedgerLookup.
func (c *Cached) Reserves(ctx context.Context) (*explain.Reserves, error) {
	return load(ctx, c, c.reserves, reservesKey, c.next.Reserves)
}

// Purge drops every cached entry.
func (c *Cached) Purge() {
	c.accounts.Purge()
	c.lines.Purge()
	c.reserves.Purge()
}

// Open dials the configured endpoint and adds the cache when enabled. The
// closer shuts the connection.
func Open(ctx context.Context, cfg config.LookupConfig, log *zap.Logger) (explain.LedgerLookup, io.Closer, error) {
	client, err := Dial(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.CachingEnabled() {
		return client, client, nil
	}
	return NewCached(client, cfg.CacheSize, cfg.CacheTTL, log), client, nil
}
