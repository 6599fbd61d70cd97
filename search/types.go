package search

import (
	"errors"

	"github.com/tectonik/stressinv/geomath"
)

// Sentinel errors for sampling configuration and evaluation.
var (
	// ErrUnknownAxis indicates an Axis name with no settable field on the
	// parameter space.
	ErrUnknownAxis = errors.New("search: axis name not settable on the parameter space")
	// ErrAxisSamples indicates a grid axis with fewer than 2 samples.
	ErrAxisSamples = errors.New("search: grid axis needs at least 2 samples")
	// ErrAxisBounds indicates axis bounds that are not finite or not
	// strictly increasing.
	ErrAxisBounds = errors.New("search: axis bounds must be finite with min < max")
	// ErrAxisCount indicates a Domain constructed with a number of axes
	// other than 2 or 3.
	ErrAxisCount = errors.New("search: domain needs 2 or 3 axes")
	// ErrSampleCount indicates a scatter sample count below 1.
	ErrSampleCount = errors.New("search: scatter needs at least 1 sample")
	// ErrNoData indicates a parameter space constructed over an empty
	// data set.
	ErrNoData = errors.New("search: parameter space needs at least one datum")
	// ErrNoActiveData indicates a Cost call with every datum deactivated.
	ErrNoActiveData = errors.New("search: no active data to aggregate")
	// ErrSearchParams indicates non-positive step or interval parameters on
	// a refinement search.
	ErrSearchParams = errors.New("search: steps and intervals must be positive")
)

// Axis names one settable scalar field of a ParameterSpace together with its
// sampling bounds. Count is the number of grid samples (inclusive of both
// bounds); scatter sampling ignores it.
type Axis struct {
	Name  string
	Min   float64
	Max   float64
	Count int
}

// ParameterSpace is a set of named scalar parameters and a cost functional
// over them. Samplers mutate axes and read Cost within one synchronous call
// sequence; implementations perform no evaluation on writes.
//
// HasAxis is the capability check Domains run once at construction, so a
// sampling loop never needs to handle an unknown axis.
type ParameterSpace interface {
	HasAxis(name string) bool
	TrySetAxis(name string, value float64) bool
	Cost() (float64, error)
}

// Solution is one evaluated stress hypothesis: the principal-axis rotation
// tensor (rows σ1, σ3, σ2), the shape ratio and the aggregate cost.
type Solution struct {
	Rot  geomath.Mat3
	R    float64
	Cost float64
}
