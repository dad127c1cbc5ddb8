package builder

import (
	"math/rand"
	"strconv"
)

// RateFn yields the flow rate of the idx-th valve emitted by a constructor.
// rng is nil unless WithSeed or WithRand was given.
type RateFn func(rng *rand.Rand, idx int) uint32

// DefaultRate is the constant rate assigned when no RateFn is configured.
const DefaultRate uint32 = 1

type builderConfig struct {
	idFn   func(int) string
	rng    *rand.Rand
	rateFn RateFn
}

// BuilderOption configures a Build call.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   strconv.Itoa,
		rateFn: ConstantRates(DefaultRate),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the valve identifier scheme. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for all stochastic decisions. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRateFn sets the rate function. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}

	return func(c *builderConfig) { c.rateFn = fn }
}

// WithUniformRates draws rates uniformly from [min, max].
func WithUniformRates(min, max uint32) BuilderOption {
	return WithRateFn(UniformRates(min, max))
}

// ConstantRates always yields v.
func ConstantRates(v uint32) RateFn {
	return func(*rand.Rand, int) uint32 { return v }
}

// UniformRates samples uniformly in [min, max]; without an RNG it yields min.
// Panics if max < min.
func UniformRates(min, max uint32) RateFn {
	if max < min {
		panic("builder: UniformRates(max < min)")
	}

	return func(rng *rand.Rand, _ int) uint32 {
		if rng == nil || max == min {
			return min
		}

		return min + uint32(rng.Int63n(int64(max-min)+1))
	}
}

// SparseRates yields v for every k-th valve (idx%k == k-1) and 0 otherwise,
// which mimics real inputs where most junctions are broken valves.
func SparseRates(v uint32, k int) RateFn {
	if k < 1 {
		panic("builder: SparseRates(k < 1)")
	}

	return func(_ *rand.Rand, idx int) uint32 {
		if idx%k == k-1 {
			return v
		}

		return 0
	}
}
