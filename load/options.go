package load

import (
	"go.uber.org/zap"
)

// ============================================================================
// LOADER OPTIONS — Functional options for Load()
// ============================================================================

// Option configures loader behavior via functional options pattern.
type Option func(*config)

type config struct {
	logger           *zap.Logger
	coverageWarnings bool
	separator        rune // 0 = sniff from the first line
}

// WithLogger attaches a structured logger. Without one the loader is
// silent (zap.NewNop).
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCoverageWarnings surfaces a Warn log for each column whose
// categorical labels only partially cover the observed codes. Off by
// default: unlabelled codes keep their raw code text either way, so the
// data is preserved and most callers do not care.
func WithCoverageWarnings(enabled bool) Option {
	return func(c *config) {
		c.coverageWarnings = enabled
	}
}

// WithSeparator fixes the CSV field separator instead of sniffing it
// from the first line.
func WithSeparator(sep rune) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
