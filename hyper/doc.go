// SPDX-License-Identifier: MIT

// Package hyper builds families of hypercomplex number systems by recursively
// doubling a base numeric type, in the style of the Cayley–Dickson construction.
//
// 🚀 What is a doubling?
//
//	Each doubling turns an inner type T into pairs (First, Second) of T, with a
//	multiplication rule fixed by the square of the new unit:
//	  • Complex[T]   First + Second·i,  i² = −1
//	  • Dual[T]      First + Second·ε,  ε² = 0   (forward-mode differentiation)
//	  • Split[T]     First + Second·j,  j² = +1
//	  • Diagonal[T]  First + Second·k,  k² = k   (idempotent)
//
//	Every doubled type satisfies the same Number contract as its inner type, so
//	levels nest freely: Complex[Dual[Split[Real]]] is a valid number.
//
// ✨ Key features:
//   - one generic contract (Number) with arithmetic, ordering, cloning and
//     sixteen transcendental unary operations
//   - seven canonical constants per type (Factory), derived level by level and
//     memoised once per concrete type behind a thread-safe lazy cell
//   - algebra-independent identities (PowExpLog, SinhExp, ...) and an
//     operation-enum dispatcher (Call, CallBinary)
//   - two base scalars: Real (float64) and Decimal (exact decimal arithmetic)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypernum/hyper"
//
//	z := hyper.NewComplex[hyper.Real](2, 3)
//	w := hyper.NewComplex[hyper.Real](1, -1)
//	p := z.Mul(w) // (5, 1)
//
//	// derivative of sin at 0.5
//	d, err := hyper.Variable[hyper.Real](0.5).Sin() // (sin 0.5, cos 0.5)
//
// Errors:
//
//	ErrUnsupported   — no identity for this algebra (Split.Sin, Split.Sqrt, ...)
//	ErrNotInvertible — division by, or inversion of, a non-invertible value
//	ErrNonFinite     — a base scalar would be NaN or ±Inf
//
// Errors are raised at the lowest level that detects them and propagate
// unchanged through every enclosing level; match them with errors.Is.
//
// All values are immutable; every operation is a pure function.
package hyper
