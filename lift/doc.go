// Package lift canonicalizes a parsed conic program into the primal form the
// relaxation solver accepts:
//
//	rowLB ≤ A·x ≤ rowUB
//	colLB ≤ x ≤ colUB
//	x[cone k] ∈ L_k   for every cone record k
//
// Variable domains become column bounds or cone records over the domain's
// columns. Row domains become row bounds; a conic row domain cannot be
// expressed over existing variables, so it is lifted:
//
//	A_S·x + b_S ∈ L   ⇒   A_S·x − y = −b_S,  y ∈ L
//
// with one new column y_i per member row. Lifted columns are appended after
// all original columns, in row-domain order, and carry a single −1 entry at
// their row.
//
// Cone records are produced in discovery order: variable-domain cones first,
// then row-domain cones. The leading member of every cone (the two leading
// members of a rotated cone) gets lower bound 0.
//
// Canonicalize runs once per model load and the returned Problem is
// immutable input to the search.
package lift
