// Package metrics exposes Prometheus collectors for model setup and the node
// descriptor protocol.
//
// Collectors are registered on a caller-supplied Registerer so tests and
// embedding programs can keep separate registries. A nil *Collectors is valid
// and records nothing.
package metrics
