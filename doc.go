// Package stressinv inverts stress tensors from structural-geology field
// data: fault planes, striations, conjugate pairs, shear bands and focal
// mechanisms.
//
// The toolkit converts geometric field measurements (strike, dip, rake,
// sense of movement) into unit vectors in the geographic frame
// S = (East, North, Up), builds hypothetical reduced stress tensors over a
// 4-parameter space (three orientation angles and the shape ratio R), and
// scores every hypothesis against every observed datum; the best-fitting
// orientation and shape ratio are the output.
//
// Everything is organized under five subpackages:
//
//	geomath/ — Vec3/Mat3 primitives, rotations, spherical coordinates
//	fault/   — fault-plane geometry, striations, sense-of-movement checks
//	stress/  — reduced stress tensors, shear components, principal stresses
//	data/    — the Data contract and its geological observation variants
//	search/  — parameter spaces, grid/scatter samplers, lattice refinement
//
// Design principles:
//
//   - No panics on user input and no logging: every failure is a sentinel
//     error (errors.Is-friendly), wrapped with the line or axis context.
//   - Deterministic: seeded random sampling, no time-based sources.
//   - Compression-negative sign convention throughout; principal-axis
//     tensors carry rows (σ1, σ3, σ2) and are always proper rotations.
package stressinv
