package assetkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// ErrAssetNotFound indicates a name did not resolve to any asset of the collection.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUnknownCollection indicates no collection is registered under the name.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrBundleMismatch indicates the index listed an identifier the bundle could not open.
	ErrBundleMismatch = errors.New("asset listed but not readable from bundle")

	// ErrInvalidCollection indicates a collection definition is incomplete or conflicting.
	ErrInvalidCollection = errors.New("invalid collection")
)

// NotFoundError reports a name that did not resolve.
// It unwraps to ErrAssetNotFound.
type NotFoundError struct {
	Collection string
	Name       string
	Required   bool // raised by Require for a curated name
}

func (e *NotFoundError) Error() string {
	if e.Required {
		return fmt.Sprintf("required asset %q not found in collection %q", e.Name, e.Collection)
	}
	return fmt.Sprintf("%s: %q in collection %q", ErrAssetNotFound, e.Name, e.Collection)
}

// Unwrap returns ErrAssetNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrAssetNotFound
}
