package assets

import "errors"

// Sentinel errors for embedded asset lookups.
var (
	// ErrStyleNotFound indicates the requested gallery style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the name contains path separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
