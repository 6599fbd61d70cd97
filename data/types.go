package data

import (
	"errors"
	"math"

	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

// Sentinel errors for data initialization and evaluation.
var (
	// ErrLineCount indicates the wrong number of input lines for a type.
	ErrLineCount = errors.New("data: wrong number of input lines")
	// ErrMissingField indicates a mandatory field absent from an input line.
	ErrMissingField = errors.New("data: missing mandatory field")
	// ErrIdenticalPlanes indicates two (numerically) identical fault planes
	// where distinct planes are required.
	ErrIdenticalPlanes = errors.New("data: fault planes are identical")
	// ErrPerpendicularPlanes indicates perpendicular planes whose σ1/σ3
	// assignment cannot be resolved because no movement is declared.
	ErrPerpendicularPlanes = errors.New("data: perpendicular planes need a declared sense of movement")
	// ErrExclusiveIntervals indicates that both a friction-angle interval and
	// a ⟨σ1,normal⟩ interval were supplied; they are mutually exclusive.
	ErrExclusiveIntervals = errors.New("data: friction and sigma1-normal intervals are mutually exclusive")
	// ErrIntervalRange indicates interval bounds outside their valid range
	// or in the wrong order.
	ErrIntervalRange = errors.New("data: invalid angular interval bounds")
	// ErrMissingStriation indicates that neither a rake nor a striation
	// trend was supplied where a striation is mandatory.
	ErrMissingStriation = errors.New("data: striation requires a rake or a trend")
	// ErrAmbiguousStriation indicates that both a rake and a striation trend
	// were supplied.
	ErrAmbiguousStriation = errors.New("data: rake and striation trend are mutually exclusive")
	// ErrNonMonotonicMisfit indicates that the 3-candidate fallback found its
	// minimum at the middle candidate, violating the monotonicity invariant
	// of the misfit outside the valid interval. Signals a logic or data bug.
	ErrNonMonotonicMisfit = errors.New("data: misfit minimum at interval midpoint (internal invariant violated)")
	// ErrNoStress indicates Cost was called with a hypothesis that carries
	// no stress tensor; callers are expected to gate on Check.
	ErrNoStress = errors.New("data: hypothesis carries no stress tensor")
	// ErrUnsupportedProblemType indicates a declared-but-unimplemented
	// problem type (kinematic/displacement analysis).
	ErrUnsupportedProblemType = errors.New("data: unsupported problem type")
	// ErrUnknownDataType indicates a type tag absent from the registry.
	ErrUnknownDataType = errors.New("data: unknown data type tag")
	// ErrDuplicateDataType indicates a type tag registered twice.
	ErrDuplicateDataType = errors.New("data: duplicate data type tag")
	// ErrFrictionAngle indicates a non-positive rock friction angle in a
	// friction-law analysis.
	ErrFrictionAngle = errors.New("data: friction analysis requires a positive rock friction angle")
)

// ProblemType selects the mechanical interpretation of a datum.
type ProblemType int

const (
	// Dynamic is the stress-based problem: costs compare observed kinematics
	// against a hypothetical stress tensor. The only implemented type.
	Dynamic ProblemType = iota
	// Kinematic is the displacement/strain-based problem. Declared as an
	// extension point; any evaluation attempt yields ErrUnsupportedProblemType.
	Kinematic
)

// Hypothesis is one candidate stress state under evaluation: the resolved
// stress tensor in the geographic frame, the principal-axis rotation tensor
// it was built from (rows σ1, σ3, σ2), and the shape ratio R.
type Hypothesis struct {
	Stress geomath.Mat3
	Rot    geomath.Mat3
	R      float64
	Has    bool
}

// HypothesisFromEngine snapshots the engine's current hypothetical stress.
// ok is false when the engine has no hypothesis set.
func HypothesisFromEngine(e *stress.Engine) (Hypothesis, bool) {
	sigma, ok := e.Stress()
	if !ok {
		return Hypothesis{}, false
	}
	rot, _ := e.Orientation()
	r, _ := e.ShapeRatio()

	return Hypothesis{Stress: sigma, Rot: rot, R: r, Has: true}, true
}

// Data is one field observation (or linked pair, e.g. two conjugate planes)
// scored against stress hypotheses.
type Data interface {
	// Type returns the registry tag of the concrete variant.
	Type() string
	// Initialize derives all geometry from the pre-tokenized input lines.
	// One-time and expensive; validates cross-field geometric constraints.
	Initialize(lines []Line) error
	// Check reports whether the hypothesis is evaluable at all.
	Check(h Hypothesis) bool
	// Cost returns the misfit ≥ 0 of the hypothesis against this datum.
	// Cheap and side-effect free; errors only on internal-invariant
	// violations or a hypothesis without stress.
	Cost(h Hypothesis) (float64, error)
	// Predict returns derived slip directions under the hypothesis, one per
	// plane of the datum, for reporting. ok is false when not derivable.
	Predict(h Hypothesis) (slips []geomath.Vec3, ok bool)

	// Weight is the relative influence in aggregate costs (default 1).
	Weight() float64
	SetWeight(w float64)
	// Active data participate in aggregate costs; inactive are skipped.
	Active() bool
	SetActive(active bool)
	// Problem returns the mechanical problem type of the datum.
	Problem() ProblemType
	SetProblem(p ProblemType)
}

// attrs carries the bookkeeping shared by every Data variant.
type attrs struct {
	weight  float64
	active  bool
	problem ProblemType
}

func defaultAttrs() attrs {
	return attrs{weight: 1, active: true, problem: Dynamic}
}

func (a *attrs) Weight() float64          { return a.weight }
func (a *attrs) SetWeight(w float64)      { a.weight = w }
func (a *attrs) Active() bool             { return a.active }
func (a *attrs) SetActive(active bool)    { a.active = active }
func (a *attrs) Problem() ProblemType     { return a.problem }
func (a *attrs) SetProblem(p ProblemType) { a.problem = p }

// Line is one pre-tokenized, range-validated data-file line as delivered by
// the external parser. Numeric fields use NaN for "absent"; string fields
// use the empty string. Initialize re-validates cross-field geometric
// constraints the generic tokenizer has no notion of.
type Line struct {
	// Index is the 1-based line number in the source file, used in error
	// messages only.
	Index int

	Strike       float64
	Dip          float64
	DipDirection string

	Rake            float64
	StrikeDirection string
	StriationTrend  float64
	Movement        string

	FrictionMin, FrictionMax         float64
	Sigma1NormalMin, Sigma1NormalMax float64

	Weight float64
}

// NewLine returns a Line with all numeric fields marked absent.
func NewLine(index int) Line {
	nan := math.NaN()

	return Line{
		Index:           index,
		Strike:          nan,
		Dip:             nan,
		Rake:            nan,
		StriationTrend:  nan,
		FrictionMin:     nan,
		FrictionMax:     nan,
		Sigma1NormalMin: nan,
		Sigma1NormalMax: nan,
		Weight:          nan,
	}
}

// present reports whether a numeric field was supplied.
func present(x float64) bool { return !math.IsNaN(x) }
