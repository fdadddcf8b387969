package bubble

import "math/rand/v2"

// EmitterBuilderOption is a functional option for configuring an Emitter.
type EmitterBuilderOption func(*emitter)

// WithEmitterConfig replaces the default tuning. The config is validated when
// the emitter is built; an invalid config panics.
//
// Parameters:
//   - cfg: the effect configuration
//
// Returns:
//   - EmitterBuilderOption: option function to apply
func WithEmitterConfig(cfg Config) EmitterBuilderOption {
	return func(e *emitter) {
		e.cfg = cfg
	}
}

// WithRand sets the random source, e.g. a seeded one for reproducible effects.
//
// Parameters:
//   - r: the random source
//
// Returns:
//   - EmitterBuilderOption: option function to apply
func WithRand(r *rand.Rand) EmitterBuilderOption {
	return func(e *emitter) {
		e.rng = r
	}
}
