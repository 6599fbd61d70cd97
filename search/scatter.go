package search

import (
	"fmt"
	"math/rand"
)

// ScatterDomain samples a parameter space at n uniformly distributed random
// points over 2 or 3 axes. Sampling is deterministic for a given seed; each
// axis draws from its own substream, so adding or reordering axes does not
// reshuffle the others. Axis Counts are ignored; n fixes the sample count.
//
// The drawn coordinates are retained and available through Samples after a
// run, one row per sample in axis order.
type ScatterDomain struct {
	space ParameterSpace
	axes  []Axis
	n     int
	seed  int64

	samples [][]float64
}

// NewScatterDomain validates the axes against the space and builds the
// domain. n < 1 yields ErrSampleCount; seed 0 selects a fixed default seed.
func NewScatterDomain(space ParameterSpace, n int, seed int64, axes ...Axis) (*ScatterDomain, error) {
	if err := validateAxes(space, axes, false); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}

	return &ScatterDomain{
		space: space,
		axes:  append([]Axis(nil), axes...),
		n:     n,
		seed:  seed,
	}, nil
}

// Run draws n sample points, evaluates the cost at each and returns the n
// values in draw order. The coordinates of every sample are retained.
func (s *ScatterDomain) Run() ([]float64, error) {
	if s.seed == 0 {
		s.seed = defaultRNGSeed
	}
	rngs := make([]*rand.Rand, len(s.axes))
	for i := range s.axes {
		rngs[i] = rngFromSeed(deriveSeed(s.seed, uint64(i)))
	}

	s.samples = make([][]float64, 0, s.n)
	costs := make([]float64, 0, s.n)
	for k := 0; k < s.n; k++ {
		point := make([]float64, len(s.axes))
		for i, a := range s.axes {
			point[i] = a.Min + rngs[i].Float64()*(a.Max-a.Min)
			s.space.TrySetAxis(a.Name, point[i])
		}
		c, err := s.space.Cost()
		if err != nil {
			return nil, err
		}
		s.samples = append(s.samples, point)
		costs = append(costs, c)
	}

	return costs, nil
}

// Samples returns the coordinates drawn by the last Run, one row per sample
// in axis order. Nil before the first run.
func (s *ScatterDomain) Samples() [][]float64 { return s.samples }
