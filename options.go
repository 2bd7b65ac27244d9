package assetkit

import (
	"io"
	"io/fs"

	"github.com/rs/zerolog"
)

// Option configures a Registry.
type Option func(*Registry)

// Bundle is the storage behind a collection: it lists canonical identifiers
// and opens them. Identifiers outside the collection prefix are ignored.
type Bundle interface {
	Names() ([]string, error)
	Open(id string) (io.ReadCloser, error)
}

// CollectionSpec describes an asset collection backed by an fs.FS.
type CollectionSpec struct {
	// Name is the short name used to look the collection up ("fonts", "svg").
	Name string

	// Prefix is the namespace every canonical identifier starts with, without
	// the trailing dot ("assetkit.fonts").
	Prefix string

	// FS holds the files; Root is the slash-separated directory inside FS
	// that maps to Prefix. Root "" means the top of FS.
	FS   fs.FS
	Root string

	// Extensions lists recognized extensions in preference order. The first
	// one is appended to names given without a recognized extension.
	Extensions []string

	// BaseNameFallback lets "folder/file.ext" resolve by its file name when the
	// folder does not match. Useful for flat icon sets.
	BaseNameFallback bool
}

// WithLogger sets the logger used for index builds, misses and bundle errors.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithCollectionDir layers a directory on disk over the named collection.
// Files in dir take precedence over embedded files with the same identifier.
// An empty dir is ignored.
func WithCollectionDir(name, dir string) Option {
	return func(r *Registry) {
		if dir == "" {
			return
		}
		r.dirs[name] = dir
	}
}

// WithBundle replaces the backing bundle of the named collection.
// Dirs set with WithCollectionDir still overlay it.
func WithBundle(name string, b Bundle) Option {
	return func(r *Registry) {
		r.bundles[name] = b
	}
}

// WithCollection registers an additional collection, or replaces the
// definition of a built-in one with the same name.
func WithCollection(spec CollectionSpec) Option {
	return func(r *Registry) {
		for i := range r.specs {
			if r.specs[i].Name == spec.Name {
				r.specs[i] = spec
				return
			}
		}
		r.specs = append(r.specs, spec)
	}
}
