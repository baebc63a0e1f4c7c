// Package checkpoint stores encoded node descriptors in BadgerDB.
//
// Keys are namespaced by a run UUID, so several runs may share one database.
// Handing a descriptor to Put is an ownership hand-off: the stored bytes are a
// snapshot, and the caller should Close its copy once it no longer owns the
// node.
package checkpoint
