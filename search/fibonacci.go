package search

import (
	"math"

	"github.com/tectonik/stressinv/geomath"
)

// Evaluator scores one explicit stress hypothesis (orientation rows
// σ1, σ3, σ2 and shape ratio). *StressSpace satisfies it.
type Evaluator interface {
	Evaluate(rot geomath.Mat3, ratio float64) (float64, error)
}

// FibonacciSearch refines a rough stress solution. Candidate orientations
// are the rough orientation rotated about axes placed on a Fibonacci
// (golden-angle) lattice, which distributes rotation axes quasi-uniformly
// over the sphere; for every axis a sweep of rotation magnitudes is tried,
// and for every orientation a sweep of shape ratios around the rough value.
// The minimum-cost candidate wins.
//
// Zero-valued fields take the defaults below; negative values are rejected
// with ErrSearchParams.
type FibonacciSearch struct {
	// NodesPerHemisphere is the number of lattice nodes per hemisphere; the
	// lattice holds 2·NodesPerHemisphere+1 axes in total. Default 100.
	NodesPerHemisphere int
	// RotAngleHalfInterval is the largest rotation magnitude tried around
	// each axis, radians. Default 0.1.
	RotAngleHalfInterval float64
	// DeltaRotAngle is the rotation-magnitude step, radians. Default 0.02.
	DeltaRotAngle float64
	// RatioHalfInterval is the half-width of the shape-ratio sweep around
	// the rough value. Default 0.1.
	RatioHalfInterval float64
	// DeltaRatio is the shape-ratio step. Default 0.025.
	DeltaRatio float64
}

// goldenRatio spaces the lattice longitudes so consecutive nodes never
// stack on a common meridian.
const goldenRatio = 1.6180339887498949

func (f FibonacciSearch) withDefaults() (FibonacciSearch, error) {
	if f.NodesPerHemisphere < 0 || f.RotAngleHalfInterval < 0 || f.DeltaRotAngle < 0 ||
		f.RatioHalfInterval < 0 || f.DeltaRatio < 0 {
		return f, ErrSearchParams
	}
	if f.NodesPerHemisphere == 0 {
		f.NodesPerHemisphere = 100
	}
	if f.RotAngleHalfInterval == 0 {
		f.RotAngleHalfInterval = 0.1
	}
	if f.DeltaRotAngle == 0 {
		f.DeltaRotAngle = 0.02
	}
	if f.RatioHalfInterval == 0 {
		f.RatioHalfInterval = 0.1
	}
	if f.DeltaRatio == 0 {
		f.DeltaRatio = 0.025
	}

	return f, nil
}

// ratioSweep lists the shape ratios around center, center included, clipped
// to [0, 1].
func (f FibonacciSearch) ratioSweep(center float64) []float64 {
	steps := int(math.Ceil(f.RatioHalfInterval / f.DeltaRatio))
	ratios := make([]float64, 0, 2*steps+1)
	for l := -steps; l <= steps; l++ {
		r := center + float64(l)*f.DeltaRatio
		if r >= 0 && r <= 1 {
			ratios = append(ratios, r)
		}
	}

	return ratios
}

// Run explores the lattice around rough and returns the best candidate
// found, rough itself included. Deterministic: same inputs, same solution.
func (f FibonacciSearch) Run(ev Evaluator, rough Solution) (Solution, error) {
	f, err := f.withDefaults()
	if err != nil {
		return Solution{}, err
	}

	ratios := f.ratioSweep(rough.R)

	// The null rotation is swept once, before the lattice.
	best := Solution{Rot: rough.Rot, R: rough.R, Cost: math.Inf(1)}
	for _, r := range ratios {
		c, err := ev.Evaluate(rough.Rot, r)
		if err != nil {
			return Solution{}, err
		}
		if c < best.Cost {
			best = Solution{Rot: rough.Rot, R: r, Cost: c}
		}
	}

	hem := f.NodesPerHemisphere
	total := 2*hem + 1
	angleSteps := int(math.Ceil(f.RotAngleHalfInterval / f.DeltaRotAngle))

	for i := -hem; i <= hem; i++ {
		latitude := math.Asin(2 * float64(i) / float64(total))
		axis := geomath.SphericalCoords{
			Phi:   2 * math.Pi * float64(i) / goldenRatio,
			Theta: math.Pi/2 - latitude,
		}.Unit()

		for j := 1; j <= angleSteps; j++ {
			angle := float64(j) * f.DeltaRotAngle
			d, err := geomath.RotationFromAxisAngle(axis, angle)
			if err != nil {
				return Solution{}, err
			}
			// Rows of rough.Rot are the principal axes; rotating every axis
			// by d turns the frame into rough.Rot·dᵀ.
			rot := rough.Rot.Mul(d.Transpose())

			for _, r := range ratios {
				c, err := ev.Evaluate(rot, r)
				if err != nil {
					return Solution{}, err
				}
				if c < best.Cost {
					best = Solution{Rot: rot, R: r, Cost: c}
				}
			}
		}
	}

	return best, nil
}
