package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/tectonik/stressinv/fault"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

// perpEps is the angular tolerance, in radians, for detecting identical and
// perpendicular plane pairs.
const perpEps = 1e-7

// parsePlaneLine builds a fault plane and its declared sense of movement
// from one input line, aggregating every validation failure with the line
// index so a bad pair reports all problems at once.
func parsePlaneLine(ln Line) (fault.Plane, fault.SenseOfMovement, error) {
	var errs []error

	if !present(ln.Strike) {
		errs = append(errs, fmt.Errorf("line %d: %w: strike", ln.Index, ErrMissingField))
	}
	if !present(ln.Dip) {
		errs = append(errs, fmt.Errorf("line %d: %w: dip", ln.Index, ErrMissingField))
	}

	dipDir, err := fault.ParseDipDirection(ln.DipDirection)
	if err != nil {
		errs = append(errs, fmt.Errorf("line %d: %w", ln.Index, err))
	}
	movement, err := fault.ParseSenseOfMovement(ln.Movement)
	if err != nil {
		errs = append(errs, fmt.Errorf("line %d: %w", ln.Index, err))
	}
	if len(errs) > 0 {
		return fault.Plane{}, fault.UnknownMovement, errors.Join(errs...)
	}

	plane, err := fault.NewPlane(ln.Strike, ln.Dip, dipDir)
	if err != nil {
		return fault.Plane{}, fault.UnknownMovement, fmt.Errorf("line %d: %w", ln.Index, err)
	}

	return plane, movement, nil
}

// bisectionAxes derives the principal-axis rotation tensor (rows σ1, σ3, σ2)
// for a pair of plane normals. The bisector normalize(n1+n2) becomes σ1 when
// sigma1Bisects is true, σ3 otherwise; σ2 = normalize(n1×n2) completes the
// right-handed frame.
func bisectionAxes(n1, n2 geomath.Vec3, sigma1Bisects bool) (geomath.Mat3, error) {
	bisector, err := n1.Add(n2).Normalize()
	if err != nil {
		return geomath.Mat3{}, ErrIdenticalPlanes
	}
	s2, err := n1.Cross(n2).Normalize()
	if err != nil {
		return geomath.Mat3{}, ErrIdenticalPlanes
	}

	var s1, s3 geomath.Vec3
	if sigma1Bisects {
		s1 = bisector
		s3 = s2.Cross(s1)
	} else {
		s3 = bisector
		s1 = s3.Cross(s2)
	}

	return geomath.RotationFromBasis(s1, s3, s2)
}

// bisectedPair is the geometry shared by ConjugateFaults and
// CompactionShearBands: two planes whose normals bisect the principal axes,
// differing only in which axis takes the acute bisector.
type bisectedPair struct {
	planes    [2]fault.Plane
	movements [2]fault.SenseOfMovement
	normals   [2]geomath.Vec3
	mrot      geomath.Mat3
}

// initialize parses the two plane lines, derives the principal-axis frame
// and validates declared movements. sigma1BisectsAcute selects the rule for
// an acute angle between normals: true for compaction shear bands (σ1
// bisects), false for conjugate faults (σ3 bisects); the obtuse rule is the
// opposite in both cases.
func (b *bisectedPair) initialize(lines []Line, sigma1BisectsAcute bool) error {
	if len(lines) != 2 {
		return fmt.Errorf("%w: got %d, want 2", ErrLineCount, len(lines))
	}

	var errs []error
	for i := 0; i < 2; i++ {
		plane, movement, err := parsePlaneLine(lines[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.planes[i] = plane
		b.movements[i] = movement
		b.normals[i] = plane.Normal()
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	n1, n2 := b.normals[0], b.normals[1]
	if n1.AxialAngleTo(n2) <= perpEps {
		return fmt.Errorf("%w: lines %d and %d", ErrIdenticalPlanes, lines[0].Index, lines[1].Index)
	}

	theta := geomath.ClampedAcos(n1.Dot(n2))
	if math.Abs(theta-math.Pi/2) <= perpEps {
		return b.resolvePerpendicular(sigma1BisectsAcute, lines)
	}

	useSigma1 := (theta < math.Pi/2) == sigma1BisectsAcute
	mrot, err := bisectionAxes(n1, n2, useSigma1)
	if err != nil {
		return err
	}
	if err := b.validateMovements(mrot); err != nil {
		return err
	}
	b.mrot = mrot

	return nil
}

// resolvePerpendicular disambiguates the σ1/σ3 roles of exactly
// perpendicular planes: geometry alone cannot order the axes, so the
// acute-rule axes are tried against the declared movements first, then the
// obtuse-rule axes. Both failing, or no declared movement at all, is a
// configuration error.
func (b *bisectedPair) resolvePerpendicular(sigma1BisectsAcute bool, lines []Line) error {
	if b.movements[0] == fault.UnknownMovement && b.movements[1] == fault.UnknownMovement {
		return fmt.Errorf("%w: lines %d and %d", ErrPerpendicularPlanes, lines[0].Index, lines[1].Index)
	}

	var attemptErrs []error
	for _, useSigma1 := range [2]bool{sigma1BisectsAcute, !sigma1BisectsAcute} {
		mrot, err := bisectionAxes(b.normals[0], b.normals[1], useSigma1)
		if err != nil {
			return err
		}
		if err := b.validateMovements(mrot); err != nil {
			attemptErrs = append(attemptErrs, err)
			continue
		}
		b.mrot = mrot

		return nil
	}

	return errors.Join(attemptErrs...)
}

// validateMovements resolves the shear stress implied by the candidate axes
// on each plane and checks it against the declared sense of movement.
// The shape ratio only scales σ2 and cannot alter the shear direction on
// either plane, so a fixed mid value is used.
func (b *bisectedPair) validateMovements(mrot geomath.Mat3) error {
	eng := stress.NewEngine()
	if err := eng.SetHypotheticalStress(mrot, 0.5); err != nil {
		return err
	}
	sigma, _ := eng.Stress()

	var errs []error
	for i := 0; i < 2; i++ {
		if b.movements[i] == fault.UnknownMovement {
			continue
		}
		shear, _, mag := stress.FaultStressComponents(sigma, b.normals[i])
		if mag <= stress.ShearEps {
			errs = append(errs, fmt.Errorf("%w: plane %d carries no resolvable shear",
				fault.ErrKinematicInconsistency, i+1))
			continue
		}
		if err := b.planes[i].CheckMovement(shear.Scale(1/mag), b.movements[i]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// cost is the minimum rotation between the datum frame and the hypothesis
// frame over the 4 equivalent axis relabelings.
func (b *bisectedPair) cost(h Hypothesis) float64 {
	return MinRotationAngle(b.mrot.Mul(h.Rot.Transpose()))
}

// predict returns the slip directions the hypothesis resolves on each plane.
func (b *bisectedPair) predict(h Hypothesis) ([]geomath.Vec3, bool) {
	if !h.Has {
		return nil, false
	}

	slips := make([]geomath.Vec3, 0, 2)
	for i := 0; i < 2; i++ {
		shear, _, mag := stress.FaultStressComponents(h.Stress, b.normals[i])
		if mag <= stress.ShearEps {
			return nil, false
		}
		slips = append(slips, shear.Scale(1/mag))
	}

	return slips, true
}
