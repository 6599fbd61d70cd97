package data

import (
	"github.com/tectonik/stressinv/geomath"
)

// TypeCompactionShearBands is the registry tag for compaction shear bands.
const TypeCompactionShearBands = "compaction shear bands"

// CompactionShearBands is a linked pair of compaction-shear-band planes.
// It mirrors ConjugateFaults with the acute/obtuse roles swapped: σ1 bisects
// the acute angle between the normals and σ3 the obtuse one, reflecting
// compactive rather than shear-fracture mechanics. One datum spans two
// input lines.
type CompactionShearBands struct {
	attrs
	pair bisectedPair
}

// NewCompactionShearBands returns an uninitialized compaction-shear-band datum.
func NewCompactionShearBands() *CompactionShearBands {
	return &CompactionShearBands{attrs: defaultAttrs()}
}

// Type returns TypeCompactionShearBands.
func (c *CompactionShearBands) Type() string { return TypeCompactionShearBands }

// Initialize derives the principal-axis frame from two plane lines, with σ1
// on the acute bisector. Degenerate perpendicular pairs are disambiguated by
// declared movement exactly as for conjugate faults.
func (c *CompactionShearBands) Initialize(lines []Line) error {
	if err := c.pair.initialize(lines, true); err != nil {
		return err
	}
	if present(lines[0].Weight) {
		c.weight = lines[0].Weight
	}

	return nil
}

// Check reports whether the hypothesis carries a stress tensor.
func (c *CompactionShearBands) Check(h Hypothesis) bool { return h.Has }

// Cost is the minimum rotation angle, in [0, π], bringing the hypothesis
// principal frame onto the frame derived from the band pair.
func (c *CompactionShearBands) Cost(h Hypothesis) (float64, error) {
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
func (c *CompactionShearBands) Predict(h Hypothesis) ([]geomath.Vec3, bool) {
	return c.pair.predict(h)
}

// Orientation returns the derived rotation tensor (rows σ1, σ3, σ2).
func (c *CompactionShearBands) Orientation() geomath.Mat3 { return c.pair.mrot }
