package configs

import "time"

// Generator tunes the pseudo-random source shared by all generators.
type Generator struct {
	// Seed makes a run reproducible. Zero selects a time-based seed, so
	// consecutive runs differ.
	Seed int64 `env:"SEED" envDefault:"0"`
}

// EffectiveSeed returns Seed, or the current time in nanoseconds when Seed
// is zero.
func (c Generator) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
