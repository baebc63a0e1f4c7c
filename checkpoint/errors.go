package checkpoint

import "errors"

var (
	// ErrNotFound is returned by Get for a node that was never stored or was deleted.
	ErrNotFound = errors.New("checkpoint: node not found")

	// ErrBadID is returned for a negative node id.
	ErrBadID = errors.New("checkpoint: negative node id")

	// ErrNoPath is returned by Open for a persistent store without a path.
	ErrNoPath = errors.New("checkpoint: path is required for a persistent store")

	// ErrNilDescriptor is returned when a nil descriptor is stored or loaded.
	ErrNilDescriptor = errors.New("checkpoint: nil descriptor")
)
