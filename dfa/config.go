package dfa

import "fmt"

// DefaultMaxStates is the default ceiling on the number of DFA states
// subset construction may allocate.
const DefaultMaxStates = 10_000

// Config configures subset construction.
//
// Subset construction is worst-case exponential in NFA size, so the state
// ceiling is the trade-off between pattern complexity and memory: each DFA
// state costs one 128-entry transition row (512 bytes) plus an accept flag.
type Config struct {
	// MaxStates is the maximum number of DFA states subset construction
	// may allocate before compilation fails with a *CompileError.
	//
	// Default: 10,000 states (~5MB of transition tables)
	//
	// Tuning guidelines:
	//   - Typical patterns need well under 1,000 states
	//   - Heavily alternated or nested-quantifier patterns: raise toward 100,000
	//   - Memory-constrained: lower toward 1,000 (~512KB)
	MaxStates uint32
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: DefaultMaxStates,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.MaxStates == 0 {
		return fmt.Errorf("%w: MaxStates must be > 0", ErrInvalidConfig)
	}
	return nil
}

// WithMaxStates returns a new config with the specified state ceiling
func (c Config) WithMaxStates(maxStates uint32) Config {
	c.MaxStates = maxStates
	return c
}
