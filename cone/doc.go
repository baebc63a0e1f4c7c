// Package cone describes the domains a conic program places on its variables
// and rows, and the explicit second-order cone records handed to the
// relaxation solver.
//
// A domain is a contiguous slice of the column (or row) index space:
//
//	{Kind, Size, Offset}
//
// Domains are declared in input order and partition the index space, so the
// sum of sizes equals the declared column (row) count. Layout builds such a
// partition and rejects one that does not add up.
//
// Cone records come in two types:
//
//   - Quadratic: x0 ≥ ‖(x1, …, xn)‖, first member nonnegative.
//   - Rotated:   2·x0·x1 ≥ ‖(x2, …, xn)‖², first two members nonnegative.
//
// Compressed is the solver-facing form of a cone list:
//
//	Start[k]..Start[k+1] indexes Members of cone k, Types[k] is 1 or 2.
package cone
