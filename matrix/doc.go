// Package matrix provides the sparse coefficient storage of the canonical
// problem.
//
// Packed is a column-major compressed sparse matrix:
//
//	Starts[j]..Starts[j+1] index the (row, value) pairs of column j,
//	rows are strictly increasing inside a column.
//
// It is built once from (row, col, value) triplets, can grow by appending
// whole columns (the lifting transform adds one column per lifted variable),
// and is treated as immutable afterwards.
//
// Packed is not safe for concurrent mutation; concurrent readers are fine once
// construction is complete.
package matrix
