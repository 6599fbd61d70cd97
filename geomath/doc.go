// Package geomath provides the fixed-size 3D linear algebra used throughout
// stressinv: unit vectors, 3×3 rotation tensors, and spherical coordinates,
// all expressed in the geographic reference frame S = (East, North, Up).
//
// What:
//
//   - Vec3: value-type 3-vector with dot/cross products and safe normalization.
//   - Mat3: value-type 3×3 row-major matrix; a rotation tensor stores three
//     mutually orthonormal row vectors forming a right-handed basis.
//   - SphericalCoords: (phi, theta) azimuth/colatitude pair for unit vectors.
//   - Rotation constructors: from an axis+angle pair (Rodrigues) or from an
//     explicit orthonormal basis.
//   - Clamped inverse trigonometry: acos/asin whose argument is pinned to
//     [-1, 1] before evaluation, so floating-point overshoot never yields NaN.
//
// Why:
//
//	Every stress-inversion computation in this module reduces to rotations
//	between right-handed principal-axis frames and angles between unit
//	directions. Fixed-size value types keep those hot paths allocation free.
//
// Conventions:
//
//   - Frame S = (X, Y, Z) = (East, North, Up).
//   - Direction vectors (normals, striations, rotation axes) are unit length
//     within UnitEps = 1e-7.
//   - A rotation tensor W with rows (e1, e2, e3) maps a vector v expressed in
//     S into the rotated frame via W·v; det(W) = +1 always (proper rotation).
//
// Errors:
//
//   - ErrZeroVector: normalization of a (near-)zero vector.
//   - ErrNotOrthonormal: basis rows are not orthonormal or not right-handed.
//
// All functions are deterministic and side-effect free; no logging, no panics
// on user input.
package geomath
