package sim

import "math/rand"

// DurationSampler generates positive durations in hours.
// Every implementation draws exclusively from the rng handed to Sample,
// never from package-global state.
type DurationSampler interface {
	Sample(rng *rand.Rand) float64
}

// UniformSampler draws uniformly from [min, max].
type UniformSampler struct {
	min, max float64
}

// NewUniformSampler creates a sampler over [b.Min, b.Max].
func NewUniformSampler(b Bounds) *UniformSampler {
	return &UniformSampler{min: b.Min, max: b.Max}
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Float64()*(s.max-s.min)
}

// ConstantSampler always returns the same fixed value (zero variance).
// Used by the evaluation surface when operation times are pinned.
type ConstantSampler struct {
	value float64
}

// NewConstantSampler creates a sampler that always returns value.
func NewConstantSampler(value float64) *ConstantSampler {
	return &ConstantSampler{value: value}
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}
