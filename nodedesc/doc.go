// Package nodedesc holds the incremental state attached to a search-tree node
// and its byte-stream protocol.
//
// A Descriptor carries the branching decision that created the node
// (direction, variable index, value), an optional warm-start payload and the
// generic bound-delta lists inherited from the tree-node layer. Encode writes,
// and Decode reads, one linear stream:
//
//	bound deltas (variables, then constraints)
//	branchedDir      int64
//	branchedInd      int64
//	branchedVal      float64
//	warm-start flag  1 byte
//	warm-start       length-prefixed bytes, only when the flag is 1
//
// All fixed-width values are little endian. decode(encode(d)) re-encodes to
// the same bytes.
//
// A descriptor is owned by one worker at a time; handing it to another worker
// or to a checkpoint store is a move. The warm-start slot has single-owner
// semantics: installing a new value (SetBasis or Decode) releases the old one.
package nodedesc
