package humps

import (
	"time"

	"github.com/erraggy/keycase/caseerrors"
)

// DefaultKeyCacheTTL is used by WithKeyCache when ttl is zero.
const DefaultKeyCacheTTL = 10 * time.Minute

// Option is a function that configures a Converter
type Option func(*converterConfig) error

// converterConfig holds configuration for a Converter
type converterConfig struct {
	logger     Logger
	strictKeys bool

	// 0 means unlimited
	maxDepth int

	// Key cache; disabled when cacheSize is 0
	cacheSize int64
	cacheTTL  time.Duration
}

func applyOptions(opts ...Option) (*converterConfig, error) {
	cfg := &converterConfig{
		logger: NopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the structured logger. A nil logger restores the NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *converterConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithStrictKeys makes key collisions fail the whole call with a
// *caseerrors.CollisionError instead of letting the last key win.
func WithStrictKeys(enabled bool) Option {
	return func(cfg *converterConfig) error {
		cfg.strictKeys = enabled
		return nil
	}
}

// WithMaxDepth bounds container nesting. Deeper input fails with a
// *caseerrors.ResourceLimitError. Zero disables the check.
func WithMaxDepth(depth int) Option {
	return func(cfg *converterConfig) error {
		if depth < 0 {
			return &caseerrors.ConfigError{Option: "max-depth", Value: depth, Message: "must not be negative"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithKeyCache memoizes key conversions in an LRU cache holding up to size
// entries for ttl each. A zero ttl uses DefaultKeyCacheTTL. A converter with a
// key cache owns a background goroutine; call Close when done with it.
func WithKeyCache(size int64, ttl time.Duration) Option {
	return func(cfg *converterConfig) error {
		if size <= 0 {
			return &caseerrors.ConfigError{Option: "key-cache-size", Value: size, Message: "must be positive"}
		}
		if ttl < 0 {
			return &caseerrors.ConfigError{Option: "key-cache-ttl", Value: ttl, Message: "must not be negative"}
		}
		if ttl == 0 {
			ttl = DefaultKeyCacheTTL
		}
		cfg.cacheSize = size
		cfg.cacheTTL = ttl
		return nil
	}
}
