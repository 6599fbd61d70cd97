package data

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/fault"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

// TypeFocalMechanism is the registry tag for focal mechanisms.
const TypeFocalMechanism = "focal mechanism"

// FocalCostStrategy selects how the angle θ between the declared slip and
// the resolved shear direction maps to a cost.
type FocalCostStrategy int

const (
	// AngleMisfit scores θ directly, in [0, π].
	AngleMisfit FocalCostStrategy = iota
	// CosineMisfit scores 0.5·(1 − cos θ), in [0, 1]; smoother near zero.
	CosineMisfit
)

// FocalMechanism is a seismological double couple: two nodal planes, each
// with a rake-defined slip vector. Which nodal plane is the fault is unknown,
// so cost is the minimum over the two interpretations. There is no sense-of-
// movement consistency check; the rake carries the slip sense.
//
// The second nodal plane is optional: when absent it is derived as the
// auxiliary plane by swapping the normal and slip vectors, with a sign flip
// keeping the derived normal upward.
type FocalMechanism struct {
	attrs
	strategy FocalCostStrategy
	normals  [2]geomath.Vec3
	slips    [2]geomath.Vec3
}

// NewFocalMechanism returns an uninitialized focal-mechanism datum scoring
// with the given strategy.
func NewFocalMechanism(strategy FocalCostStrategy) *FocalMechanism {
	return &FocalMechanism{attrs: defaultAttrs(), strategy: strategy}
}

// Type returns TypeFocalMechanism.
func (f *FocalMechanism) Type() string { return TypeFocalMechanism }

// Initialize derives the nodal planes and slip vectors from one or two
// lines. Each supplied line needs strike, dip, a dip direction when
// inclined, a full-circle rake in [-180, 180], and the strike end the rake
// is measured from.
func (f *FocalMechanism) Initialize(lines []Line) error {
	if len(lines) < 1 || len(lines) > 2 {
		return fmt.Errorf("%w: got %d, want 1 or 2", ErrLineCount, len(lines))
	}

	for i, ln := range lines {
		normal, slip, err := nodalPlane(ln)
		if err != nil {
			return err
		}
		f.normals[i], f.slips[i] = normal, slip
	}

	if len(lines) == 1 {
		// Auxiliary plane: normal and slip swap roles in a double couple.
		normal, slip := f.slips[0], f.normals[0]
		if normal.Z < 0 {
			// Keep the derived normal upward; the slip flips with it so the
			// couple's shear sense is preserved.
			normal, slip = normal.Neg(), slip.Neg()
		}
		f.normals[1], f.slips[1] = normal, slip
	}

	if present(lines[0].Weight) {
		f.weight = lines[0].Weight
	}

	return nil
}

// nodalPlane builds one nodal plane's upward normal and oriented slip vector.
func nodalPlane(ln Line) (normal, slip geomath.Vec3, err error) {
	plane, _, err := parsePlaneLine(ln)
	if err != nil {
		return geomath.Vec3{}, geomath.Vec3{}, err
	}
	if !present(ln.Rake) {
		return geomath.Vec3{}, geomath.Vec3{}, fmt.Errorf("line %d: %w: rake", ln.Index, ErrMissingField)
	}

	end, err := fault.ParseDipDirection(ln.StrikeDirection)
	if err != nil {
		return geomath.Vec3{}, geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, err)
	}
	slip, err = plane.SlipFromRake(ln.Rake, end)
	if err != nil {
		return geomath.Vec3{}, geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, err)
	}

	return plane.Normal(), slip, nil
}

// Check reports whether the hypothesis carries a stress tensor.
func (f *FocalMechanism) Check(h Hypothesis) bool { return h.Has }

// Cost resolves the hypothesis shear on each nodal plane, scores it against
// that plane's slip vector, and returns the better (smaller) of the two
// interpretations. A plane with no resolvable shear takes the maximal
// misfit (θ = π).
func (f *FocalMechanism) Cost(h Hypothesis) (float64, error) {
	if f.problem != Dynamic {
		return 0, ErrUnsupportedProblemType
	}
	if !h.Has {
		return 0, ErrNoStress
	}

	best := math.Inf(1)
	for i := 0; i < 2; i++ {
		shear, _, mag := stress.FaultStressComponents(h.Stress, f.normals[i])
		theta := math.Pi
		if mag > stress.ShearEps {
			theta = stress.AngularDifStriation(f.slips[i], shear, mag)
		}
		if c := f.score(theta); c < best {
			best = c
		}
	}

	return best, nil
}

// score maps an angular deviation to a cost under the configured strategy.
func (f *FocalMechanism) score(theta float64) float64 {
	if f.strategy == CosineMisfit {
		return 0.5 * (1 - math.Cos(theta))
	}

	return theta
}

// Predict returns the shear directions the hypothesis resolves on the two
// nodal planes; ok is false when either carries no resolvable shear.
func (f *FocalMechanism) Predict(h Hypothesis) ([]geomath.Vec3, bool) {
	if !h.Has {
		return nil, false
	}

	slips := make([]geomath.Vec3, 0, 2)
	for i := 0; i < 2; i++ {
		slip, ok := resolvedSlip(h.Stress, f.normals[i])
		if !ok {
			return nil, false
		}
		slips = append(slips, slip)
	}

	return slips, true
}

// NodalPlanes returns the upward normals of the two nodal planes.
func (f *FocalMechanism) NodalPlanes() [2]geomath.Vec3 { return f.normals }

// Slips returns the oriented slip vectors of the two nodal planes.
func (f *FocalMechanism) Slips() [2]geomath.Vec3 { return f.slips }

// resolvedSlip normalizes the shear stress a tensor resolves on a plane.
func resolvedSlip(sigma geomath.Mat3, normal geomath.Vec3) (geomath.Vec3, bool) {
	shear, _, mag := stress.FaultStressComponents(sigma, normal)
	if mag <= stress.ShearEps {
		return geomath.Vec3{}, false
	}

	return shear.Scale(1 / mag), true
}
