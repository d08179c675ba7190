package humps

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v2"

	"github.com/erraggy/keycase/caseerrors"
)

// Converter transcodes mapping keys between camelCase and snake_case.
// A Converter is safe for concurrent use, including Close while conversions
// are running.
type Converter struct {
	logger   Logger
	strict   bool
	maxDepth int

	// mu guards cache against Stop while a Fetch is in flight.
	mu       sync.RWMutex
	cache    *ccache.Cache
	cacheTTL time.Duration
	closed   bool
}

// New creates a Converter configured by opts.
//
// Example:
//
//	conv, err := humps.New(
//	    humps.WithStrictKeys(true),
//	    humps.WithMaxDepth(64),
//	)
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		logger:   cfg.logger,
		strict:   cfg.strictKeys,
		maxDepth: cfg.maxDepth,
	}
	if cfg.cacheSize > 0 {
		c.cache = ccache.New(ccache.Configure().MaxSize(cfg.cacheSize))
		c.cacheTTL = cfg.cacheTTL
		c.logger.Debug("key cache enabled", "size", cfg.cacheSize, "ttl", cfg.cacheTTL)
	}
	return c, nil
}

// Close releases the key cache, if any. Conversions keep working afterwards,
// uncached. Close is idempotent.
func (c *Converter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cache != nil {
		c.cache.Stop()
	}
}

// Key converts a single key string.
func (c *Converter) Key(s string, dir Direction) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cache == nil || c.closed {
		return dir.convert(s)
	}
	item, err := c.cache.Fetch(dir.String()+":"+s, c.cacheTTL, func() (interface{}, error) {
		return dir.convert(s), nil
	})
	if err != nil {
		return dir.convert(s)
	}
	if key, ok := item.Value().(string); ok {
		return key
	}
	return dir.convert(s)
}

// CachedKeys returns the number of memoized key conversions.
func (c *Converter) CachedKeys() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cache == nil || c.closed {
		return 0
	}
	return c.cache.ItemCount()
}

// Transform transcodes v in the given direction.
//
// Containers ([]any, []string, []map[string]any, map[string]any, *yaml.Node)
// are rebuilt with every mapping key converted; values inside containers are
// left alone unless they are containers themselves. A bare string is
// converted, and a bare nil is treated as the empty string. Other scalars are
// returned unchanged. The input is never modified.
func (c *Converter) Transform(v any, dir Direction) (any, error) {
	if !dir.valid() {
		return nil, &caseerrors.ConfigError{Option: "direction", Value: int(dir), Message: "unknown direction"}
	}

	switch val := v.(type) {
	case nil:
		return c.Key("", dir), nil
	case string:
		return c.Key(val, dir), nil
	}

	w := newWalker(c, dir)
	return w.value(v, rootPath, 0)
}

// Camelize converts every mapping key in v to camelCase.
func (c *Converter) Camelize(v any) (any, error) {
	return c.Transform(v, ToCamel)
}

// Decamelize converts every mapping key in v to snake_case.
func (c *Converter) Decamelize(v any) (any, error) {
	return c.Transform(v, ToSnake)
}

// IsCamelCase reports whether camelizing v leaves it unchanged.
func (c *Converter) IsCamelCase(v any) bool {
	return c.isFixedPoint(v, ToCamel)
}

// IsSnakeCase reports whether decamelizing v leaves it unchanged.
func (c *Converter) IsSnakeCase(v any) bool {
	return c.isFixedPoint(v, ToSnake)
}

func (c *Converter) isFixedPoint(v any, dir Direction) bool {
	out, err := c.Transform(v, dir)
	if err != nil {
		return false
	}
	return deepEqual(out, v)
}
