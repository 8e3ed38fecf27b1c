package frost

import "fmt"

// Config fixes the threshold parameters of a FROST execution: MinSigners
// participants (out of MaxSigners total) must cooperate to produce a valid
// signature. Config is immutable once constructed by NewConfig and is
// threaded explicitly through every operation that needs it, rather than
// read from the environment or a config file (spec.md §6).
type Config struct {
	MinSigners uint32
	MaxSigners uint32
}

// NewConfig validates and returns a Config. It fails with
// ErrInvalidThreshold unless 1 <= minSigners <= maxSigners.
func NewConfig(minSigners, maxSigners uint32) (Config, error) {
	if minSigners < 1 || minSigners > maxSigners {
		return Config{}, fmt.Errorf("threshold %d of %d: %w", minSigners, maxSigners, ErrInvalidThreshold)
	}
	return Config{MinSigners: minSigners, MaxSigners: maxSigners}, nil
}
