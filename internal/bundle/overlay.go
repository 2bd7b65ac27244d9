package bundle

import (
	"errors"
	"io"
	"io/fs"
)

// Overlay combines a custom bundle with a fallback bundle.
// Custom identifiers are listed first, so an index built over the overlay lets
// custom files claim alias keys before the fallback does. Opening tries the
// custom bundle first and falls back only when the asset is not there.
type Overlay struct {
	custom   Bundle // nil if no custom bundle configured
	fallback Bundle
}

// NewOverlay creates an Overlay. custom may be nil.
func NewOverlay(custom, fallback Bundle) *Overlay {
	return &Overlay{custom: custom, fallback: fallback}
}

// Names lists custom identifiers, then fallback identifiers not already listed.
func (o *Overlay) Names() ([]string, error) {
	base, err := o.fallback.Names()
	if err != nil {
		return nil, err
	}
	if o.custom == nil {
		return base, nil
	}

	custom, err := o.custom.Names()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(custom)+len(base))
	out := make([]string, 0, len(custom)+len(base))
	for _, names := range [][]string{custom, base} {
		for _, id := range names {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

// Open opens id from the custom bundle, or from the fallback if custom lacks it.
func (o *Overlay) Open(id string) (io.ReadCloser, error) {
	if o.custom == nil {
		return o.fallback.Open(id)
	}

	rc, err := o.custom.Open(id)
	if err == nil {
		return rc, nil
	}

	// Only fall back for "not found" errors, not traversal or I/O errors
	if !isNotFoundError(err) {
		return nil, err
	}

	return o.fallback.Open(id)
}

// HasCustom returns true if a custom bundle is configured.
func (o *Overlay) HasCustom() bool {
	return o.custom != nil
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrNotInBundle) || errors.Is(err, fs.ErrNotExist)
}

// Compile-time interface check.
var _ Bundle = (*Overlay)(nil)
