package data

import (
	"fmt"
	"math"
	"sort"

	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

// StriatedFault is the minimal striated-plane view consumed by the
// set-level misfit criteria: an upward unit normal and an oriented unit
// striation lying in the plane.
type StriatedFault struct {
	Normal    geomath.Vec3
	Striation geomath.Vec3
}

// AngularDeviation sums the angular deviation between each fault's measured
// striation and the shear direction sigma resolves on its plane
// (Etchecopar criterion). Planes sub-perpendicular to a principal axis carry
// no resolvable shear and score π/2 so they are pushed out of the solution
// set.
//
// maxFaults > 0 restricts the sum to the maxFaults best-fitting faults
// (deviations sorted increasingly); maxFaults ≤ 0 sums them all.
func AngularDeviation(faults []StriatedFault, sigma geomath.Mat3, maxFaults int) float64 {
	devs := make([]float64, len(faults))
	for i, f := range faults {
		shear, _, mag := stress.FaultStressComponents(sigma, f.Normal)
		if mag <= stress.ShearEps {
			devs[i] = math.Pi / 2
			continue
		}
		devs[i] = stress.AngularDifStriation(f.Striation, shear, mag)
	}

	return truncatedSum(devs, maxFaults)
}

// FrictionLawDeviation scores each striated fault by the sum of its angular
// striation deviation and a weighted friction deficit, then sums over the
// set (optionally truncated to the maxFaults best).
//
// The Mohr circle is shifted along the normal-stress axis by
// cohesion/tan(frictionAngle) so the Mohr-Coulomb line passes through the
// origin; a fault whose stress vector falls below that line contributes the
// angular shortfall frictionAngle − atan(|τ|/σn'), weighted by
// frictionWeight. Angles are radians; frictionAngle must be positive.
func FrictionLawDeviation(faults []StriatedFault, sigma geomath.Mat3, cohesion, frictionAngle, frictionWeight float64, maxFaults int) (float64, error) {
	if frictionAngle <= stress.ShearEps {
		return 0, fmt.Errorf("%w: got %g", ErrFrictionAngle, frictionAngle)
	}

	// Shift of the normalized Mohr circle placing the friction line through
	// the origin of the (normal stress, shear stress) plane.
	deltaNormal := cohesion / math.Tan(frictionAngle)

	misfits := make([]float64, len(faults))
	for i, f := range faults {
		shear, normalStress, mag := stress.FaultStressComponents(sigma, f.Normal)

		angular := math.Pi / 2
		if mag > stress.ShearEps {
			angular = stress.AngularDifStriation(f.Striation, shear, mag)
		}

		// Compression is negative; the shifted magnitude is positive for
		// planes in compression.
		shifted := -normalStress + deltaNormal

		deficit := frictionAngle
		if shifted > stress.ShearEps {
			planeFriction := math.Atan(mag / shifted)
			if planeFriction >= frictionAngle {
				deficit = 0
			} else {
				deficit = frictionAngle - planeFriction
			}
		}

		misfits[i] = angular + frictionWeight*deficit
	}

	return truncatedSum(misfits, maxFaults), nil
}

// truncatedSum sums the k smallest values when 0 < k < len(vals), otherwise
// all of them.
func truncatedSum(vals []float64, k int) float64 {
	if k > 0 && k < len(vals) {
		sort.Float64s(vals)
		vals = vals[:k]
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}

	return sum
}
