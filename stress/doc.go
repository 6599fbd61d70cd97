// Package stress builds hypothetical stress tensors and resolves them onto
// fault planes.
//
// What:
//
//   - Engine: materializes a full stress tensor in the geographic frame from
//     a principal-axis rotation tensor and a shape ratio R = (σ2−σ3)/(σ1−σ3).
//   - FaultStressComponents: traction, normal stress, and shear-stress vector
//     acting on a plane of given normal under a stress tensor.
//   - AngularDifStriation: angle between an observed striation and the
//     resolved shear direction (Etchecopar-style angular deviation).
//   - PrincipalStresses: eigen decomposition of a symmetric stress tensor
//     into sorted principal values and axes (gonum), used by prediction and
//     reporting paths.
//
// Conventions:
//
//   - Continuum-mechanics sign: compression is negative. The normalized
//     principal values are (σ1, σ2, σ3) = (−1, −R, 0), so the reduced tensor
//     is fully described by an orientation and the shape ratio R ∈ [0,1].
//   - The rotation tensor W passed to SetHypotheticalStress has rows
//     (σ1, σ3, σ2): for a vector v in the geographic frame S, W·v yields its
//     principal-frame coordinates. The resolved tensor is σ = Wᵀ·Λ·W with
//     Λ = diag(−1, 0, −R).
//
// The Engine holds the current hypothesis only; evaluation against data is
// the data package's concern. The stress field is uniform: StressAt returns
// the same tensor at every position (extension point for spatially varying
// fields).
package stress
