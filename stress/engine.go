package stress

import (
	"errors"
	"fmt"

	"github.com/tectonik/stressinv/geomath"
)

// Sentinel errors for hypothesis construction.
var (
	// ErrShapeRatioRange indicates a shape ratio outside [0, 1].
	ErrShapeRatioRange = errors.New("stress: shape ratio R must be in [0,1]")
	// ErrNotRotation indicates an orientation tensor that is not a proper
	// rotation (orthonormal rows, det = +1).
	ErrNotRotation = errors.New("stress: orientation is not a proper rotation tensor")
	// ErrNoHypothesis indicates that no hypothetical stress has been set.
	ErrNoHypothesis = errors.New("stress: no hypothetical stress set")
)

// Engine owns the current hypothetical stress tensor. A parameter-space
// search mutates it once per sample via SetHypotheticalStress and reads the
// resolved tensor back; the Engine performs no evaluation of its own.
//
// Not safe for concurrent use: one Engine per search worker.
type Engine struct {
	rot    geomath.Mat3 // rows (σ1, σ3, σ2) in the geographic frame
	ratio  float64
	stress geomath.Mat3
	has    bool
}

// NewEngine returns an Engine with no hypothesis set.
func NewEngine() *Engine { return &Engine{} }

// SetHypotheticalStress materializes the reduced stress tensor for the given
// principal-axis orientation (rows σ1, σ3, σ2) and shape ratio R ∈ [0,1]:
//
//	σ = Wᵀ·diag(−1, 0, −R)·W
//
// in the geographic frame, compression negative.
func (e *Engine) SetHypotheticalStress(rot geomath.Mat3, shapeRatio float64) error {
	if shapeRatio < 0 || shapeRatio > 1 {
		return fmt.Errorf("%w: got %g", ErrShapeRatioRange, shapeRatio)
	}
	if !rot.IsRotation() {
		return ErrNotRotation
	}

	// Principal values in the (σ1, σ3, σ2) row order of W.
	lambda := geomath.Mat3{
		{-1, 0, 0},
		{0, 0, 0},
		{0, 0, -shapeRatio},
	}
	e.rot = rot
	e.ratio = shapeRatio
	e.stress = rot.Transpose().Mul(lambda).Mul(rot)
	e.has = true

	return nil
}

// Stress returns the current resolved stress tensor in the geographic frame.
// ok is false when no hypothesis has been set.
func (e *Engine) Stress() (sigma geomath.Mat3, ok bool) {
	return e.stress, e.has
}

// StressAt returns the stress tensor at a position. The field is uniform, so
// the position is ignored; data carrying spatial positions call this instead
// of Stress so a spatially varying field can be introduced without touching
// the data variants.
func (e *Engine) StressAt(_ geomath.Vec3) (sigma geomath.Mat3, ok bool) {
	return e.stress, e.has
}

// Orientation returns the rotation tensor (rows σ1, σ3, σ2) of the current
// hypothesis. ok is false when no hypothesis has been set.
func (e *Engine) Orientation() (rot geomath.Mat3, ok bool) {
	return e.rot, e.has
}

// ShapeRatio returns the shape ratio R of the current hypothesis.
func (e *Engine) ShapeRatio() (r float64, ok bool) {
	return e.ratio, e.has
}
