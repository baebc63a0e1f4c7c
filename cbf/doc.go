// Package cbf reads the textual conic-program format.
//
// A file is a sequence of labelled blocks. Each block starts with a keyword
// alone on its line and its data is read as whitespace-separated tokens
// (possibly spanning lines) until the block is complete:
//
//	VER        version, must be 1
//	OBJSENSE   MAX or MIN (anything else is MIN)
//	VAR        numCols numDomains, then numDomains × (token size)
//	INT        numInt, then numInt × column
//	CON        numRows numDomains, then numDomains × (token size)
//	OBJACOORD  nnz, then nnz × (column value)
//	OBJBCOORD  objective constant
//	ACOORD     nnz, then nnz × (row column value)
//	BCOORD     nnz, then nnz × (row value)
//
// Domain tokens are F, L+, L-, L=, Q and QR. Lines starting with '#' and
// unrecognized lines are skipped. A block that references columns or rows
// must come after the block declaring them.
//
// Every failure is fatal: no partial Instance is returned.
package cbf
