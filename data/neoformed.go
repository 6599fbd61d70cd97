package data

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/fault"
	"github.com/tectonik/stressinv/geomath"
)

// Registry tags for striated-plane data.
const (
	TypeNeoformedStriatedPlane    = "neoformed striated plane"
	TypeStriatedDilatantShearBand = "striated dilatant shear band"
)

// NeoformedStriatedPlane is a fault plane freshly created by the stress
// state it records, together with its striation. The σ1 axis is not a single
// direction but a range: it lies in the (normal, striation) plane at an
// angle ⟨σ1,normal⟩ within a Mohr-circle interval, supplied either directly
// or through a friction-angle interval (⟨σ1,normal⟩ = π/4 + φ/2), defaulting
// to [3π/8−π/8, 3π/8+π/8).
//
// Cost against a hypothesis is the rotation aligning the σ2 axes when the
// aligned hypothesis σ1 falls inside the valid interval, otherwise the
// minimum rotation to one of the interval's boundary/midpoint frames.
type NeoformedStriatedPlane struct {
	attrs
	plane     fault.Plane
	normal    geomath.Vec3
	striation geomath.Vec3
	sigma2    geomath.Vec3
	sigma1Mid geomath.Vec3

	center, halfWidth float64 // ⟨σ1,normal⟩ interval, radians

	// candidate frames at the interval minimum, midpoint and maximum
	candidates [3]geomath.Mat3
}

// NewNeoformedStriatedPlane returns an uninitialized striated-plane datum.
func NewNeoformedStriatedPlane() *NeoformedStriatedPlane {
	return &NeoformedStriatedPlane{attrs: defaultAttrs()}
}

// Type returns TypeNeoformedStriatedPlane.
func (n *NeoformedStriatedPlane) Type() string { return TypeNeoformedStriatedPlane }

// Initialize derives the plane, striation and candidate σ1 frames from a
// single input line.
//
// The striation comes from a rake plus strike end, or from a trend azimuth;
// supplying both is a validation error, as is supplying both a friction
// interval and a ⟨σ1,normal⟩ interval. A declared sense of movement orients
// the striation (and is checked for consistency); without one the measured
// orientation is taken as the slip sense.
func (n *NeoformedStriatedPlane) Initialize(lines []Line) error {
	if len(lines) != 1 {
		return fmt.Errorf("%w: got %d, want 1", ErrLineCount, len(lines))
	}
	ln := lines[0]

	plane, movement, err := parsePlaneLine(ln)
	if err != nil {
		return err
	}

	striation, err := buildStriation(plane, ln)
	if err != nil {
		return err
	}
	if movement != fault.UnknownMovement {
		striation, err = orientStriation(plane, striation, movement)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln.Index, err)
		}
	}

	center, halfWidth, err := sigma1Interval(ln)
	if err != nil {
		return err
	}

	normal := plane.Normal()
	sigma2, err := normal.Cross(striation).Normalize()
	if err != nil {
		// Unreachable for a striation lying in the plane; surfacing it keeps
		// the invariant visible.
		return fmt.Errorf("line %d: striation parallel to normal: %w", ln.Index, err)
	}

	angles := [3]float64{center - halfWidth, center, center + halfWidth}
	for i, a := range angles {
		s1 := normal.Scale(math.Cos(a)).Sub(striation.Scale(math.Sin(a)))
		s3 := sigma2.Cross(s1)
		m, err := geomath.RotationFromBasis(s1, s3, sigma2)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln.Index, err)
		}
		n.candidates[i] = m
	}

	n.plane = plane
	n.normal = normal
	n.striation = striation
	n.sigma2 = sigma2
	n.sigma1Mid = n.candidates[1].Row(0)
	n.center = center
	n.halfWidth = halfWidth
	if present(ln.Weight) {
		n.weight = ln.Weight
	}

	return nil
}

// buildStriation derives the striation from exactly one of the two
// supported forms.
func buildStriation(plane fault.Plane, ln Line) (geomath.Vec3, error) {
	hasRake, hasTrend := present(ln.Rake), present(ln.StriationTrend)
	switch {
	case hasRake && hasTrend:
		return geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, ErrAmbiguousStriation)
	case !hasRake && !hasTrend:
		return geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, ErrMissingStriation)
	case hasRake:
		end, err := fault.ParseDipDirection(ln.StrikeDirection)
		if err != nil {
			return geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, err)
		}
		s, err := plane.StriationFromRake(ln.Rake, end)
		if err != nil {
			return geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, err)
		}

		return s, nil
	default:
		s, err := plane.StriationFromTrend(ln.StriationTrend)
		if err != nil {
			return geomath.Vec3{}, fmt.Errorf("line %d: %w", ln.Index, err)
		}

		return s, nil
	}
}

// orientStriation flips the measured striation, if needed, so that it agrees
// with the declared sense of movement; agreement in neither orientation is a
// kinematic inconsistency.
func orientStriation(plane fault.Plane, s geomath.Vec3, movement fault.SenseOfMovement) (geomath.Vec3, error) {
	if plane.CheckMovement(s, movement) == nil {
		return s, nil
	}
	if plane.CheckMovement(s.Neg(), movement) == nil {
		return s.Neg(), nil
	}

	return geomath.Vec3{}, plane.CheckMovement(s, movement)
}

// sigma1Interval resolves the ⟨σ1,normal⟩ interval (center, half-width in
// radians) from the line's optional interval fields.
func sigma1Interval(ln Line) (center, halfWidth float64, err error) {
	hasFriction := present(ln.FrictionMin) || present(ln.FrictionMax)
	hasSigma1 := present(ln.Sigma1NormalMin) || present(ln.Sigma1NormalMax)

	switch {
	case hasFriction && hasSigma1:
		return 0, 0, fmt.Errorf("line %d: %w", ln.Index, ErrExclusiveIntervals)

	case hasFriction:
		if !present(ln.FrictionMin) || !present(ln.FrictionMax) {
			return 0, 0, fmt.Errorf("line %d: %w: friction interval needs both bounds", ln.Index, ErrMissingField)
		}
		if ln.FrictionMin < 0 || ln.FrictionMax >= 90 || ln.FrictionMin > ln.FrictionMax {
			return 0, 0, fmt.Errorf("line %d: %w: friction [%g,%g), want 0 ≤ min ≤ max < 90",
				ln.Index, ErrIntervalRange, ln.FrictionMin, ln.FrictionMax)
		}
		phiMin := ln.FrictionMin * math.Pi / 180
		phiMax := ln.FrictionMax * math.Pi / 180
		// ⟨σ1,normal⟩ = π/4 + φ/2 maps the friction interval onto the
		// Mohr-circle angular interval.
		return math.Pi/4 + (phiMin+phiMax)/4, (phiMax - phiMin) / 4, nil

	case hasSigma1:
		if !present(ln.Sigma1NormalMin) || !present(ln.Sigma1NormalMax) {
			return 0, 0, fmt.Errorf("line %d: %w: sigma1-normal interval needs both bounds", ln.Index, ErrMissingField)
		}
		if ln.Sigma1NormalMin < 0 || ln.Sigma1NormalMax > 90 || ln.Sigma1NormalMin > ln.Sigma1NormalMax {
			return 0, 0, fmt.Errorf("line %d: %w: sigma1-normal [%g,%g), want 0 ≤ min ≤ max ≤ 90",
				ln.Index, ErrIntervalRange, ln.Sigma1NormalMin, ln.Sigma1NormalMax)
		}
		lo := ln.Sigma1NormalMin * math.Pi / 180
		hi := ln.Sigma1NormalMax * math.Pi / 180

		return (lo + hi) / 2, (hi - lo) / 2, nil

	default:
		// Default interval ⟨σ1,normal⟩ ∈ [3π/8 − π/8, 3π/8 + π/8).
		return 3 * math.Pi / 8, math.Pi / 8, nil
	}
}

// Check reports whether the hypothesis carries a stress tensor.
func (n *NeoformedStriatedPlane) Check(h Hypothesis) bool { return h.Has }

// Cost evaluates the hypothesis against the valid σ1 interval.
//
// Fast path: rotate the hypothesis σ1 by the minimal rotation aligning the
// hypothesis σ2 axis with the datum σ2 axis; if it lands within the interval
// half-width of the midpoint σ1, the alignment angle itself is the cost.
// Otherwise the minimum rotation to one of the 3 candidate frames applies;
// a minimum at the middle candidate contradicts the monotonicity of the
// misfit outside the interval and yields ErrNonMonotonicMisfit.
func (n *NeoformedStriatedPlane) Cost(h Hypothesis) (float64, error) {
	if n.problem != Dynamic {
		return 0, ErrUnsupportedProblemType
	}
	if !h.Has {
		return 0, ErrNoStress
	}

	hSigma2 := h.Rot.Row(2)
	if hSigma2.Dot(n.sigma2) < 0 {
		hSigma2 = hSigma2.Neg() // σ2 is an axis: ±σ2 are equivalent
	}

	align := geomath.ClampedAcos(hSigma2.Dot(n.sigma2))
	hSigma1 := h.Rot.Row(0)
	if axis := hSigma2.Cross(n.sigma2); axis.Norm() > geomath.UnitEps {
		rot, err := geomath.RotationFromAxisAngle(axis, align)
		if err == nil {
			hSigma1 = rot.MulVec(hSigma1)
		}
	}

	if hSigma1.AxialAngleTo(n.sigma1Mid) <= n.halfWidth {
		return align, nil
	}

	minCost, minIdx := math.Inf(1), -1
	for i, m := range n.candidates {
		if c := MinRotationAngle(m.Mul(h.Rot.Transpose())); c < minCost {
			minCost, minIdx = c, i
		}
	}
	if minIdx == 1 {
		return 0, fmt.Errorf("%w: plane strike=%g dip=%g", ErrNonMonotonicMisfit, n.plane.Strike, n.plane.Dip)
	}

	return minCost, nil
}

// Predict returns the slip direction the hypothesis resolves on the plane.
func (n *NeoformedStriatedPlane) Predict(h Hypothesis) ([]geomath.Vec3, bool) {
	if !h.Has {
		return nil, false
	}
	slip, ok := resolvedSlip(h.Stress, n.normal)
	if !ok {
		return nil, false
	}

	return []geomath.Vec3{slip}, true
}

// Striation returns the oriented striation unit vector.
// Invariant: |Normal·Striation| < 1e-7.
func (n *NeoformedStriatedPlane) Striation() geomath.Vec3 { return n.striation }

// Normal returns the upward unit normal of the plane.
func (n *NeoformedStriatedPlane) Normal() geomath.Vec3 { return n.normal }

// Interval returns the ⟨σ1,normal⟩ interval as (center, halfWidth) radians.
func (n *NeoformedStriatedPlane) Interval() (center, halfWidth float64) {
	return n.center, n.halfWidth
}

// StriatedDilatantShearBand is a neoformed striated plane recorded on a
// dilatant shear band. The geometry and cost model are those of
// NeoformedStriatedPlane; the distinct tag keeps the observation type
// visible in data files and reports.
type StriatedDilatantShearBand struct {
	NeoformedStriatedPlane
}

// NewStriatedDilatantShearBand returns an uninitialized dilatant-band datum.
func NewStriatedDilatantShearBand() *StriatedDilatantShearBand {
	return &StriatedDilatantShearBand{NeoformedStriatedPlane{attrs: defaultAttrs()}}
}

// Type returns TypeStriatedDilatantShearBand.
func (s *StriatedDilatantShearBand) Type() string { return TypeStriatedDilatantShearBand }
