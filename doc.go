// SPDX-License-Identifier: MIT

// Package hypernum is a library of doubled number systems: pairs (a, b) of a
// base scalar whose multiplication is fixed by the square of one new unit.
//
// 🚀 What is hypernum?
//
//	A generic, dependency-light toolkit that brings together:
//		• Four doubling rules: complex (i² = −1), dual (ε² = 0),
//		  split-complex (j² = +1) and diagonal (k² = k)
//		• Arbitrary nesting: Complex[Dual[Split[Real]]] is a valid 8-dimensional number
//		• Transcendentals: exp, log, trigonometric and hyperbolic functions
//		• Forward-mode derivatives through Dual[Real]
//		• Exact decimal components via govalues/decimal
//		• Memoised per-type constants, dimension and the Create protocol
//
// ✨ Why choose hypernum?
//
//   - Explicit failure – partial operations return (T, error) with errors.Is sentinels
//   - Concurrency-safe – factories are built once per type and shared
//   - Verifiable – every value has a real matrix representation (matrep)
//
// Layout:
//
//	hyper/         — number types, capability contract, factory, generic dispatch
//	matrep/        — regular representation: flatten, left-multiplication matrices
//	internal/cli/  — hyperdemo commands: eval, derive, run, matrix
//	cmd/hyperdemo/ — CLI entry point
//
// Quick example:
//
//	z := hyper.NewComplex[hyper.Real](2, 3)
//	w := z.Mul(hyper.NewComplex[hyper.Real](1, -1)) // (5, 1)
//
//	go get github.com/katalvlaran/hypernum
package hypernum
