package assetkit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-assetkit/internal/assets"
	"github.com/alnah/go-assetkit/internal/bundle"
)

// Built-in collection names.
const (
	CollectionFonts   = "fonts"
	CollectionSVG     = "svg"
	CollectionUIIcons = "uiicons"
)

// Registry owns the asset collections of a process.
// Each collection builds its index lazily, on first use.
type Registry struct {
	logger  zerolog.Logger
	specs   []CollectionSpec
	dirs    map[string]string
	bundles map[string]Bundle

	order       []string
	collections map[string]*Collection
}

// DefaultCollections returns the definitions of the built-in collections,
// all served from the embedded asset tree.
func DefaultCollections() []CollectionSpec {
	fsys := assets.FS()
	return []CollectionSpec{
		{
			Name:       CollectionFonts,
			Prefix:     "assetkit.fonts",
			FS:         fsys,
			Root:       assets.FontsDir,
			Extensions: []string{".ttf", ".otf"},
		},
		{
			Name:             CollectionSVG,
			Prefix:           "assetkit.svg",
			FS:               fsys,
			Root:             assets.SVGDir,
			Extensions:       []string{".svg"},
			BaseNameFallback: true,
		},
		{
			Name:             CollectionUIIcons,
			Prefix:           "assetkit.uiicons",
			FS:               fsys,
			Root:             assets.UIIconsDir,
			Extensions:       []string{".svg"},
			BaseNameFallback: true,
		},
	}
}

// NewRegistry creates a Registry holding the built-in collections plus any
// added with WithCollection. Nothing is enumerated until a collection is used.
//
// Returns ErrInvalidCollection for incomplete definitions, ErrUnknownCollection
// when an option names a collection that does not exist, and
// bundle.ErrInvalidBasePath (wrapped) for unusable directories.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		logger:      zerolog.Nop(),
		specs:       DefaultCollections(),
		dirs:        make(map[string]string),
		bundles:     make(map[string]Bundle),
		collections: make(map[string]*Collection),
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, spec := range r.specs {
		if err := r.validateSpec(spec); err != nil {
			return nil, err
		}
	}
	for name := range r.dirs {
		if !r.hasSpec(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
		}
	}
	for name := range r.bundles {
		if !r.hasSpec(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
		}
	}

	for _, spec := range r.specs {
		b, err := r.bundleFor(spec)
		if err != nil {
			return nil, err
		}
		r.collections[spec.Name] = newCollection(spec, b, r.logger)
		r.order = append(r.order, spec.Name)
	}

	return r, nil
}

// Collection returns the collection registered under name.
func (r *Registry) Collection(name string) (*Collection, error) {
	c, ok := r.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// Names lists the registered collection names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Fonts returns the built-in font collection.
func (r *Registry) Fonts() *Collection { return r.collections[CollectionFonts] }

// SVG returns the built-in general icon collection.
func (r *Registry) SVG() *Collection { return r.collections[CollectionSVG] }

// UIIcons returns the built-in UI icon collection.
func (r *Registry) UIIcons() *Collection { return r.collections[CollectionUIIcons] }

func (r *Registry) hasSpec(name string) bool {
	for _, s := range r.specs {
		if s.Name == name {
			return true
		}
	}
	return false
}

func (r *Registry) validateSpec(spec CollectionSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCollection)
	}
	if err := bundle.ValidatePrefix(spec.Prefix); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidCollection, spec.Name, err)
	}
	if len(spec.Extensions) == 0 {
		return fmt.Errorf("%w: %q: no extensions", ErrInvalidCollection, spec.Name)
	}
	if spec.FS == nil && r.bundles[spec.Name] == nil {
		return fmt.Errorf("%w: %q: no file system", ErrInvalidCollection, spec.Name)
	}

	seen := 0
	for _, s := range r.specs {
		if s.Name == spec.Name {
			seen++
		}
		if s.Name != spec.Name && s.Prefix == spec.Prefix {
			return fmt.Errorf("%w: %q and %q share prefix %q", ErrInvalidCollection, s.Name, spec.Name, spec.Prefix)
		}
	}
	if seen > 1 {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidCollection, spec.Name)
	}
	return nil
}

// bundleFor builds the bundle of a collection: the injected or embedded
// bundle, with the configured directory layered on top.
func (r *Registry) bundleFor(spec CollectionSpec) (bundle.Bundle, error) {
	var base bundle.Bundle
	if b, ok := r.bundles[spec.Name]; ok {
		base = b
	} else {
		base = bundle.NewFS(spec.FS, spec.Root, spec.Prefix, spec.Extensions)
	}

	dir, ok := r.dirs[spec.Name]
	if !ok {
		return base, nil
	}

	custom, err := bundle.NewFilesystem(dir, spec.Prefix, spec.Extensions)
	if err != nil {
		return nil, fmt.Errorf("collection %q: %w", spec.Name, err)
	}
	r.logger.Debug().
		Str("collection", spec.Name).
		Str("dir", custom.BasePath()).
		Msg("overlaying asset directory")
	return bundle.NewOverlay(custom, base), nil
}
