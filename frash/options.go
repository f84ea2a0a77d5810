package frash

// Config holds the parameters of a digest computation.
type Config struct {
	// Length is the number of hex digits in the digest.
	Length int
	// MaxLength bounds Length so that memory and CPU stay bounded for
	// untrusted callers. The grid uses Rows * WidthFactor * Length bytes.
	MaxLength int
}

// DefaultConfig returns a Config with Length DefaultLength and MaxLength
// DefaultMaxLength.
func DefaultConfig() Config {
	return Config{
		Length:    DefaultLength,
		MaxLength: DefaultMaxLength,
	}
}

// Check validates c.
func (c Config) Check() error {
	return CheckLength(c.Length, c.MaxLength)
}

// Option adjusts a Config.
type Option func(*Config)

func WithLength(length int) Option {
	return func(c *Config) { c.Length = length }
}

func WithMaxLength(maxLength int) Option {
	return func(c *Config) { c.MaxLength = maxLength }
}

// WithConfig replaces the whole configuration. Options applied after it still
// take effect.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
