package search

import (
	"fmt"
	"math"
)

// validateAxes runs the shared Domain construction checks: 2 or 3 axes,
// finite increasing bounds, and a settable field on the space for every
// name. withCounts additionally requires at least 2 grid samples per axis.
func validateAxes(space ParameterSpace, axes []Axis, withCounts bool) error {
	if len(axes) < 2 || len(axes) > 3 {
		return fmt.Errorf("%w: got %d", ErrAxisCount, len(axes))
	}
	for _, a := range axes {
		if !space.HasAxis(a.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownAxis, a.Name)
		}
		if math.IsNaN(a.Min) || math.IsNaN(a.Max) ||
			math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) || a.Min >= a.Max {
			return fmt.Errorf("%w: axis %q has [%g, %g]", ErrAxisBounds, a.Name, a.Min, a.Max)
		}
		if withCounts && a.Count < 2 {
			return fmt.Errorf("%w: axis %q has %d", ErrAxisSamples, a.Name, a.Count)
		}
	}

	return nil
}

// GridDomain samples a parameter space on a regular inclusive grid over 2 or
// 3 axes. Every axis contributes Count evenly spaced values from Min to Max,
// step (Max−Min)/(Count−1); the run visits the Cartesian product in
// row-major order, the first axis slowest.
type GridDomain struct {
	space ParameterSpace
	axes  []Axis
}

// NewGridDomain validates the axes against the space and builds the domain.
// Axis names are resolved here once; Run never fails on a missing axis.
func NewGridDomain(space ParameterSpace, axes ...Axis) (*GridDomain, error) {
	if err := validateAxes(space, axes, true); err != nil {
		return nil, err
	}

	return &GridDomain{space: space, axes: append([]Axis(nil), axes...)}, nil
}

// Len returns the total number of grid samples, ∏ Countᵢ.
func (g *GridDomain) Len() int {
	total := 1
	for _, a := range g.axes {
		total *= a.Count
	}

	return total
}

// Run evaluates the cost at every grid node and returns the values in
// row-major order (last axis fastest). The space's axes hold the final
// node's values afterwards.
func (g *GridDomain) Run() ([]float64, error) {
	values := make([][]float64, len(g.axes))
	for i, a := range g.axes {
		step := (a.Max - a.Min) / float64(a.Count-1)
		values[i] = make([]float64, a.Count)
		for k := range values[i] {
			values[i][k] = a.Min + float64(k)*step
		}
		values[i][a.Count-1] = a.Max // exact upper bound, no drift
	}

	costs := make([]float64, 0, g.Len())
	idx := make([]int, len(g.axes))
	for {
		for i, a := range g.axes {
			g.space.TrySetAxis(a.Name, values[i][idx[i]])
		}
		c, err := g.space.Cost()
		if err != nil {
			return nil, err
		}
		costs = append(costs, c)

		// Row-major odometer: advance the last axis first.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < g.axes[i].Count {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return costs, nil
		}
	}
}
