package search

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

// Axis names settable on a StressSpace.
const (
	AxisPsi   = "psi"   // rotation about the σ1 axis, radians
	AxisTheta = "theta" // tilt of the σ1 axis from horizontal, radians
	AxisPhi   = "phi"   // azimuth of the σ1 axis, radians
	AxisRatio = "R"     // shape ratio (σ2−σ3)/(σ1−σ3), in [0,1]
)

// OrientationTensor builds the principal-axis rotation tensor
// (rows σ1, σ3, σ2) for the angles (phi, theta, psi): σ1 at azimuth phi and
// tilt theta, the (σ3, σ2) pair spun by psi about σ1. Proper rotation for
// any input; the identity at (0, 0, 0).
func OrientationTensor(phi, theta, psi float64) geomath.Mat3 {
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	cosPsi, sinPsi := math.Cos(psi), math.Sin(psi)

	return geomath.Mat3{
		{cosPhi * cosTheta, sinPhi * cosTheta, -sinTheta},
		{
			-sinPhi*cosPsi + cosPhi*sinTheta*sinPsi,
			cosPhi*cosPsi + sinPhi*sinTheta*sinPsi,
			cosTheta * sinPsi,
		},
		{
			sinPhi*sinPsi + cosPhi*sinTheta*cosPsi,
			-cosPhi*sinPsi + sinPhi*sinTheta*cosPsi,
			cosTheta * cosPsi,
		},
	}
}

// StressSpace is the 4-parameter stress-inversion space: three orientation
// angles (ψ, θ, φ) and the shape ratio R. Cost materializes the hypothesis
// they describe on the owned Engine and averages the misfit over the active
// data.
//
// The aggregate is the plain (unweighted) mean: each datum's Weight exists
// as an attribute but does not yet scale its contribution, matching the
// established behavior of the inversion this package reproduces.
//
// Not safe for concurrent use: one StressSpace per search worker.
type StressSpace struct {
	eng *stress.Engine
	set []data.Data

	psi, theta, phi, ratio float64
}

// NewStressSpace builds a space over the data set. eng may be nil, in which
// case a fresh Engine is allocated. An empty set yields ErrNoData.
func NewStressSpace(eng *stress.Engine, set []data.Data) (*StressSpace, error) {
	if len(set) == 0 {
		return nil, ErrNoData
	}
	if eng == nil {
		eng = stress.NewEngine()
	}

	return &StressSpace{eng: eng, set: set}, nil
}

// HasAxis reports whether name is one of the settable axes.
func (s *StressSpace) HasAxis(name string) bool {
	switch name {
	case AxisPsi, AxisTheta, AxisPhi, AxisRatio:
		return true
	default:
		return false
	}
}

// TrySetAxis writes value to the named axis, reporting whether the axis
// exists. Range validation happens at Cost, where an out-of-range shape
// ratio surfaces as stress.ErrShapeRatioRange.
func (s *StressSpace) TrySetAxis(name string, value float64) bool {
	switch name {
	case AxisPsi:
		s.psi = value
	case AxisTheta:
		s.theta = value
	case AxisPhi:
		s.phi = value
	case AxisRatio:
		s.ratio = value
	default:
		return false
	}

	return true
}

// Cost materializes the stress tensor for the current (ψ, θ, φ, R) and
// returns the mean misfit over the active data.
func (s *StressSpace) Cost() (float64, error) {
	return s.Evaluate(OrientationTensor(s.phi, s.theta, s.psi), s.ratio)
}

// Evaluate scores an explicit hypothesis (orientation rows σ1, σ3, σ2 and
// shape ratio) against the active data, bypassing the named axes. Refinement
// searches that walk rotation tensors directly use this entry point.
func (s *StressSpace) Evaluate(rot geomath.Mat3, ratio float64) (float64, error) {
	if err := s.eng.SetHypotheticalStress(rot, ratio); err != nil {
		return 0, err
	}
	h, _ := data.HypothesisFromEngine(s.eng)

	var sum float64
	var count int
	for _, d := range s.set {
		if !d.Active() {
			continue
		}
		c, err := d.Cost(h)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", d.Type(), err)
		}
		sum += c
		count++
	}
	if count == 0 {
		return 0, ErrNoActiveData
	}

	return sum / float64(count), nil
}

// Engine returns the owned stress engine, holding the hypothesis of the most
// recent evaluation.
func (s *StressSpace) Engine() *stress.Engine { return s.eng }
