// Package basis defines the simplex basis used as the warm-start payload of
// node descriptors: one status per structural column and per row.
package basis
