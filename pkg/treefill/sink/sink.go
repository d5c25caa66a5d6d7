// Package sink provides record storage backends for the conversion engine.
//
// The engine emits flat records per branch per event; a Store owns the
// branches and a Branch accepts records tagged with the event ordinal they
// belong to. Implementations must be safe for concurrent Append across
// branches (the dispatcher may run branch groups in parallel).
package sink

import "errors"

// Store owns output branches.
type Store interface {
	// NewBranch returns the branch with the given name, creating it if it
	// does not exist. class names the schema of the records the branch will
	// receive. Calling NewBranch again with the same name returns the same
	// branch (the engine re-binds a branch when configuration overwrites it).
	NewBranch(name, class string) (Branch, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Branch accepts flat records for one output schema.
type Branch interface {
	// Append stores one record for the given event ordinal.
	// rec is one of the engine's record types (Particle, Jet, ...).
	Append(event uint64, rec any) error
}

// Sentinel errors for store operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("record store closed")
)
