// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and never yield core.NoEdge.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn always returns core.DefaultWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) core.Weight {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value ≤ 0 (zero is the no-edge sentinel).
func ConstantWeightFn(value core.Weight) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) core.Weight {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min ≤ 0 or max < min.
// If rng is nil, yields core.DefaultWeight to maintain deterministic fallback.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) core.Weight {
		if rng == nil {
			return core.DefaultWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w core.Weight) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max core.Weight) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
