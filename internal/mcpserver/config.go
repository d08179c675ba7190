package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/keycase/humps"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Converter settings.
	MaxDepth   int
	StrictKeys bool

	// Key cache settings.
	KeyCacheEnabled bool
	KeyCacheSize    int
	KeyCacheTTL     time.Duration

	// Input limits.
	MaxInputSize int64
	MaxKeys      int

	// URL inputs may reach private networks.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from KEYCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:        envInt("KEYCASE_MAX_DEPTH", 512),
		StrictKeys:      envBool("KEYCASE_STRICT_KEYS", false),
		KeyCacheEnabled: envBool("KEYCASE_KEY_CACHE_ENABLED", true),
		KeyCacheSize:    envInt("KEYCASE_KEY_CACHE_SIZE", 10000),
		KeyCacheTTL:     envDuration("KEYCASE_KEY_CACHE_TTL", humps.DefaultKeyCacheTTL),
		MaxInputSize:    envInt64("KEYCASE_MAX_INPUT_SIZE", 10*1024*1024),
		MaxKeys:         envInt("KEYCASE_MAX_KEYS", 1000),
		AllowPrivateIPs: envBool("KEYCASE_ALLOW_PRIVATE_IPS", false),
	}
}

// converterOptions translates the configuration into humps options.
func (c *serverConfig) converterOptions() []humps.Option {
	opts := []humps.Option{
		humps.WithLogger(humps.NewSlogAdapter(slog.Default())),
		humps.WithStrictKeys(c.StrictKeys),
		humps.WithMaxDepth(c.MaxDepth),
	}
	if c.KeyCacheEnabled {
		opts = append(opts, humps.WithKeyCache(int64(c.KeyCacheSize), c.KeyCacheTTL))
	}
	return opts
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
