package clocktree

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/clocktree/topology"
)

// Config selects the topology algorithm and its parameters, plus the wire
// library policy. WireIndex makes the original's hardcoded "always use the
// last wire in the library" choice an explicit, named parameter.
type Config struct {
	Algorithm topology.Algorithm
	Alpha     float64
	Beta      float64
	Gamma     float64
	Delta     float64
	WireIndex int

	logger *zap.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithAlgorithm selects NNA or DNNA.
func WithAlgorithm(a topology.Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithAlpha sets the DNNA blockage-penalty scale.
func WithAlpha(alpha float64) Option { return func(c *Config) { c.Alpha = alpha } }

// WithBeta sets the DNNA load-balance-penalty scale.
func WithBeta(beta float64) Option { return func(c *Config) { c.Beta = beta } }

// WithGamma sets the DNNA total-load-penalty scale.
func WithGamma(gamma float64) Option { return func(c *Config) { c.Gamma = gamma } }

// WithDelta sets the per-pass termination parameter.
func WithDelta(delta float64) Option { return func(c *Config) { c.Delta = delta } }

// WithWireIndex selects which wire-library entry DME uses for every edge.
// Negative values count back from the end, so -1 (the default) reproduces
// the original's "last wire in the library" behavior.
func WithWireIndex(idx int) Option { return func(c *Config) { c.WireIndex = idx } }

// WithLogger installs an explicit structured-logging sink. The default is
// a no-op logger; pass zap.NewExample() or a production logger to observe
// Run's progress (parsed input, synthesized topology, written output) and
// detour cases. Topology passes are not logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// DefaultConfig returns NNA with Delta=0.5 (the original's hardcoded
// default) and the last wire-library entry selected.
func DefaultConfig() Config {
	return Config{
		Algorithm: topology.NNA,
		Delta:     0.5,
		WireIndex: -1,
		logger:    zap.NewNop(),
	}
}

// NewConfig builds a Config from functional options layered over
// DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c Config) topologySettings() topology.Settings {
	return topology.NewSettings(
		topology.WithAlgorithm(c.Algorithm),
		topology.WithAlpha(c.Alpha),
		topology.WithBeta(c.Beta),
		topology.WithGamma(c.Gamma),
		topology.WithDelta(c.Delta),
	)
}

func (c Config) loggerOrNop() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}

	return c.logger
}
