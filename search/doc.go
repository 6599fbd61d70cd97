// Package search drives stress-tensor inversion over a parameter space.
//
// A ParameterSpace exposes a small fixed set of named scalar axes and a
// Cost entry point; StressSpace is the concrete 4-parameter space
// (ψ, θ, φ, R) aggregating the misfit of a data set against the stress
// hypothesis those parameters describe. Domains sample a space:
//
//   - GridDomain — regular inclusive grid over 2 or 3 axes, row-major,
//     Complexity: O(∏ nᵢ · |data|).
//
//   - ScatterDomain — n uniform random samples over 2 or 3 axes, seeded
//     and deterministic, Complexity: O(n · |data|).
//
//   - FibonacciSearch — refinement around a rough solution: rotation axes
//     on a golden-angle (Fibonacci) lattice, a rotation-magnitude sweep per
//     axis and a shape-ratio sweep per rotation,
//     Complexity: O(nodes · angles · ratios · |data|).
//
// Axis names are checked once at Domain construction (ErrUnknownAxis); a
// sampling run never discovers a missing axis mid-flight. All sampling is
// single-threaded and deterministic: same inputs and seed, same outputs.
//
// Errors: the package returns sentinel errors from types.go (wrapped with
// fmt.Errorf("%w", ...) where context helps); it never panics on user input
// and never logs.
//
// Concurrency: a ParameterSpace's set-axis-then-Cost sequence is one atomic
// unit. Neither StressSpace nor the Domains are goroutine-safe; use one
// space per worker when parallelizing across samples.
package search
