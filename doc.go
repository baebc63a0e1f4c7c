// Package disco is the conic specialization layer of a branch-and-bound
// solver for mixed-integer second-order cone programs.
//
// The module is organized as small packages wired together by model:
//
//	cone/       domain kinds, cone records, compressed cone form, cone checks
//	matrix/     column-major sparse matrix with column append
//	cbf/        reader for the conic-program text format
//	lift/       canonicalization: bounds, lifted columns for row cones
//	nodedesc/   node descriptor and its byte-stream protocol
//	basis/      simplex basis used as warm-start payload
//	cutsched/   cut family resolution, generators, outer approximation
//	params/     YAML run parameters
//	model/      setup pipeline: read, lift, schedule, root node
//	checkpoint/ BadgerDB node store
//	metrics/    Prometheus collectors
//
// Quick example, a 3-dimensional quadratic cone on the variables:
//
//	VER
//	1
//	VAR
//	3 1
//	Q 3
//
// canonicalizes to one cone {Quadratic, [0 1 2]} with x0 >= 0.
//
//	go run ./cmd/disco canon --cones model.cbf
package disco
