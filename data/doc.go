// Package data implements the per-datum cost model of the stress inversion:
// one Data value per field observation, scored against hypothetical stress
// tensors.
//
// What:
//
//   - Data: the capability set shared by all observation types —
//     Initialize (one-time geometry derivation and validation),
//     Check (is a hypothesis evaluable), Cost (numerically cheap,
//     side-effect-free misfit), Predict (derived slip directions for
//     reporting), plus weight/active bookkeeping.
//   - Variants: ConjugateFaults, CompactionShearBands (bisection geometries),
//     NeoformedStriatedPlane and StriatedDilatantShearBand (Mohr-interval
//     geometries), FocalMechanism (two nodal-plane interpretations).
//   - MinRotationAngle: minimum rotation bringing one right-handed
//     principal-axis frame onto another, over the 4 equivalent sign
//     relabelings.
//   - Registry: explicit type-tag → constructor mapping handed to whichever
//     line parser feeds the module. No package-level mutable state.
//   - Set-level striation misfit criteria: AngularDeviation (Etchecopar) and
//     FrictionLawDeviation.
//
// Lifecycle:
//
//	A Data value is built by the Registry when a data-file line's type tag
//	is recognized. Initialize consumes the pre-tokenized lines, derives all
//	geometry (normals, striations, rotation tensors) exactly once, and
//	validates cross-field geometric constraints the generic line validator
//	cannot know. Cost is then invoked once per explored hypothesis and must
//	not allocate or mutate.
//
// Errors:
//
//	Validation errors (missing fields, mutually exclusive intervals,
//	unparseable tokens) and geometric-configuration errors (identical
//	planes, undisambiguated perpendicular planes) surface at Initialize.
//	Cost fails only on internal-invariant violations (ErrNonMonotonicMisfit)
//	or when called without a hypothesis; under normal operation it never
//	errors once Initialize has succeeded.
//
// Only the dynamic (stress-based) problem type is implemented; the
// kinematic (displacement/strain) type is declared and explicitly rejected
// with ErrUnsupportedProblemType.
package data
