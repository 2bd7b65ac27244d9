package bundle

import "errors"

// Sentinel errors for bundle operations.
var (
	// ErrNotInBundle indicates the identifier is not part of the bundle.
	ErrNotInBundle = errors.New("asset not in bundle")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while opening an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInvalidPrefix indicates a collection prefix that cannot form identifiers.
	ErrInvalidPrefix = errors.New("invalid collection prefix")

	// ErrWalk indicates the bundle root could not be walked.
	ErrWalk = errors.New("failed to walk bundle")
)
