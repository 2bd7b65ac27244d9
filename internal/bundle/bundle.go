package bundle

import "io"

// Bundle is a read-only set of assets addressed by canonical identifier.
// Implementations must be safe for concurrent use.
type Bundle interface {
	// Names lists every canonical identifier in a stable discovery order.
	Names() ([]string, error)

	// Open returns the bytes of one identifier.
	// Returns ErrNotInBundle if the identifier is unknown.
	Open(id string) (io.ReadCloser, error)
}
