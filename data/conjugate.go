package data

import (
	"github.com/tectonik/stressinv/geomath"
)

// TypeConjugateFaults is the registry tag for conjugate fault pairs.
const TypeConjugateFaults = "conjugate faults"

// ConjugateFaults is a linked pair of fault planes formed under the same
// stress state. The two upward normals bisect the principal axes: σ3 bisects
// their acute angle (σ1 the obtuse one), and σ2 lies along the plane
// intersection. One datum spans two input lines.
//
// Perpendicular normals make the σ1/σ3 roles ambiguous; the declared sense
// of movement on at least one plane must resolve them, otherwise the pair is
// rejected at Initialize.
type ConjugateFaults struct {
	attrs
	pair bisectedPair
}

// NewConjugateFaults returns an uninitialized conjugate-faults datum.
func NewConjugateFaults() *ConjugateFaults {
	return &ConjugateFaults{attrs: defaultAttrs()}
}

// Type returns TypeConjugateFaults.
func (c *ConjugateFaults) Type() string { return TypeConjugateFaults }

// Initialize derives the principal-axis frame from two plane lines.
// See the package documentation for the error taxonomy.
func (c *ConjugateFaults) Initialize(lines []Line) error {
	if err := c.pair.initialize(lines, false); err != nil {
		return err
	}
	if present(lines[0].Weight) {
		c.weight = lines[0].Weight
	}

	return nil
}

// Check reports whether the hypothesis carries a stress tensor.
func (c *ConjugateFaults) Check(h Hypothesis) bool { return h.Has }

// Cost is the minimum rotation angle, in [0, π], bringing the hypothesis
// principal frame onto the frame derived from the conjugate pair.
func (c *ConjugateFaults) Cost(h Hypothesis) (float64, error) {
	if c.problem != Dynamic {
		return 0, ErrUnsupportedProblemType
	}
	if !h.Has {
		return 0, ErrNoStress
	}

	return c.pair.cost(h), nil
}

// Predict returns the slip directions the hypothesis resolves on the two
// planes; ok is false when either plane carries no resolvable shear.
func (c *ConjugateFaults) Predict(h Hypothesis) ([]geomath.Vec3, bool) {
	return c.pair.predict(h)
}

// Orientation returns the derived rotation tensor (rows σ1, σ3, σ2).
func (c *ConjugateFaults) Orientation() geomath.Mat3 { return c.pair.mrot }
