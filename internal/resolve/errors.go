package resolve

import "errors"

// ErrEnumerate indicates the index source failed to list its identifiers.
// The index is left empty and the error is kept for inspection.
var ErrEnumerate = errors.New("failed to enumerate assets")
