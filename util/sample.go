package util

import (
	"math/rand/v2"

	"github.com/kbukum/flowkit/errors"
)

// Sampling strategy names accepted by Select.
const (
	StrategyEven     = "even"
	StrategyRandom   = "random"
	StrategyTruncate = "truncate"
)

// SampleConfig holds sampling options.
type SampleConfig struct {
	Seed int64
}

// SampleOption is a functional option for the sampling helpers.
type SampleOption func(*SampleConfig)

// WithSeed fixes the seed used by the random strategy.
func WithSeed(seed int64) SampleOption {
	return func(sc *SampleConfig) { sc.Seed = seed }
}

// Strategies lists the names Select accepts.
func Strategies() []string {
	return []string{StrategyEven, StrategyRandom, StrategyTruncate}
}

// Select picks count elements of list with the named strategy.
// An unknown strategy returns an INVALID_ARGUMENT error.
func Select[T any](strategy string, list []T, count int, opts ...SampleOption) ([]T, error) {
	switch strategy {
	case StrategyEven:
		return EvenSample(list, count), nil
	case StrategyRandom:
		return RandomSample(list, count, opts...), nil
	case StrategyTruncate:
		return Truncate(list, count), nil
	default:
		return nil, errors.UnsupportedStrategy("sample", strategy)
	}
}

// EvenSample picks count elements at a uniform stride, keeping their
// original order. The list is returned unchanged when count <= 0 or count
// exceeds its length.
func EvenSample[T any](list []T, count int) []T {
	if count <= 0 || count > len(list) {
		return list
	}
	samples := make([]T, count)
	for i := range samples {
		samples[i] = list[i*len(list)/count]
	}
	return samples
}

// RandomSample picks count distinct elements at random. The default seed is
// len(list), so equal-length inputs sample the same positions unless
// WithSeed is given. The list is returned unchanged when count <= 0 or
// count exceeds its length.
func RandomSample[T any](list []T, count int, opts ...SampleOption) []T {
	if count <= 0 || count > len(list) {
		return list
	}
	sc := SampleConfig{Seed: int64(len(list))}
	for _, opt := range opts {
		opt(&sc)
	}

	r := rand.New(rand.NewPCG(uint64(sc.Seed), 0))
	samples := make([]T, count)
	for i, idx := range r.Perm(len(list))[:count] {
		samples[i] = list[idx]
	}
	return samples
}

// Truncate returns the first count elements. count <= 0 yields an empty
// slice and count beyond the length yields the whole list.
func Truncate[T any](list []T, count int) []T {
	if count <= 0 {
		return list[:0:0]
	}
	if count > len(list) {
		return list
	}
	return list[:count:count]
}
