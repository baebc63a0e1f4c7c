// Package model runs the setup pipeline of a conic branch-and-bound run:
// read the problem file, canonicalize it, check the cones, resolve the cut
// schedule and build the root node.
//
// A Model is immutable once built, apart from Bind calls on its schedule
// made before the search starts.
package model
