// SPDX-License-Identifier: MIT

// Package matrep gives every doubled number over hyper.Real its regular
// representation: the real matrix of left multiplication.
//
// What is it?
//
//	A value x of a type with n primitive components acts on the same type by
//	y ↦ x·y. That action is linear over the reals, so it is an n×n matrix L(x):
//	  • Complex  (a, b) ↦ [[a, −b], [b, a]]
//	  • Dual     (a, b) ↦ [[a,  0], [b, a]]
//	  • Split    (a, b) ↦ [[a,  b], [b, a]]
//	  • Diagonal (a, b) ↦ [[a,  0], [b, a+b]]
//
//	L is built generically from Mul alone, so it works at any nesting depth and
//	serves as an independent check of the multiplication rules: products map to
//	matrix products and, for single-level types, invertibility matches det ≠ 0.
//
// Usage:
//
//	z := hyper.NewComplex[hyper.Real](2, 3)
//	L, _ := matrep.LeftMul(z) // [[2, -3], [3, 2]]
//	d, _ := matrep.Det(L)     // 13 = |z|²
//
// Components are laid out First before Second at every level (Flatten), so
// index 0 is always the real part.
package matrep
