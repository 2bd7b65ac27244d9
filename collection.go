package assetkit

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/alnah/go-assetkit/internal/bundle"
	"github.com/alnah/go-assetkit/internal/resolve"
)

// Collection is one namespace of assets (fonts, an icon set) with its own
// index and resolver. It is safe for concurrent use.
type Collection struct {
	name     string
	prefix   string
	bundle   bundle.Bundle
	index    *resolve.Index
	resolver *resolve.Resolver
	logger   zerolog.Logger
}

func newCollection(spec CollectionSpec, b bundle.Bundle, logger zerolog.Logger) *Collection {
	log := logger.With().Str("collection", spec.Name).Logger()

	idx := resolve.NewIndex(spec.Prefix, b, resolve.WithBuildHook(func(s resolve.Stats) {
		if s.Err != nil {
			log.Warn().Err(s.Err).Msg("asset enumeration failed, collection is empty")
			return
		}
		log.Debug().
			Int("assets", s.Assets).
			Int("aliases", s.Aliases).
			Dur("took", s.Duration).
			Msg("asset index built")
	}))

	return &Collection{
		name:   spec.Name,
		prefix: spec.Prefix,
		bundle: b,
		index:  idx,
		resolver: resolve.NewResolver(idx, resolve.Options{
			Prefix:           spec.Prefix,
			Extensions:       spec.Extensions,
			BaseNameFallback: spec.BaseNameFallback,
		}),
		logger: log,
	}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Prefix returns the identifier namespace, without the trailing dot.
func (c *Collection) Prefix() string { return c.prefix }

// Extensions returns the recognized extensions in preference order.
func (c *Collection) Extensions() []string { return c.resolver.Extensions() }

// TryResolve maps a friendly name, path or identifier to its canonical identifier.
// Accepted inputs include "Cairo-Bold.ttf", "Cairo-Bold", "Cairo/Cairo-Bold.ttf",
// `Cairo\Cairo-Bold`, "Cairo.Cairo-Bold.ttf" and the identifier itself.
// Matching ignores case. Blank input is not found.
func (c *Collection) TryResolve(name string) (string, bool) {
	id, ok := c.resolver.Resolve(name)
	if !ok {
		c.logger.Trace().Str("name", name).Msg("asset not resolved")
	}
	return id, ok
}

// Resolve is TryResolve returning a *NotFoundError on a miss.
func (c *Collection) Resolve(name string) (string, error) {
	id, ok := c.TryResolve(name)
	if !ok {
		return "", &NotFoundError{Collection: c.name, Name: name}
	}
	return id, nil
}

// Require resolves a name the program depends on, such as one of the curated
// constants. A miss is logged at error level.
func (c *Collection) Require(name string) (string, error) {
	id, ok := c.resolver.Resolve(name)
	if !ok {
		c.logger.Error().Str("name", name).Msg("required asset missing")
		return "", &NotFoundError{Collection: c.name, Name: name, Required: true}
	}
	return id, nil
}

// Exists reports whether name resolves.
func (c *Collection) Exists(name string) bool {
	_, ok := c.resolver.Resolve(name)
	return ok
}

// Open resolves name and opens the asset. The caller closes the stream.
// Returns a *NotFoundError when name does not resolve and ErrBundleMismatch
// when the asset is listed but cannot be read.
func (c *Collection) Open(name string) (io.ReadCloser, error) {
	id, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	return c.openID(id)
}

// OpenResolved opens an identifier previously returned by Resolve.
// Identifiers are matched ignoring case; no alias resolution is done.
func (c *Collection) OpenResolved(id string) (io.ReadCloser, error) {
	canonical, ok := c.index.Contains(id)
	if !ok {
		return nil, &NotFoundError{Collection: c.name, Name: id}
	}
	return c.openID(canonical)
}

// ReadFile resolves name and returns the whole asset.
func (c *Collection) ReadFile(name string) ([]byte, error) {
	rc, err := c.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return data, nil
}

func (c *Collection) openID(id string) (io.ReadCloser, error) {
	rc, err := c.bundle.Open(id)
	if err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("listed asset could not be opened")
		return nil, fmt.Errorf("%w: %q: %w", ErrBundleMismatch, id, err)
	}
	return rc, nil
}

// ResourceNames returns every canonical identifier in discovery order.
func (c *Collection) ResourceNames() []string {
	return c.index.Enumerate()
}

// FileNames returns the distinct file names ("Cairo-Bold.ttf") in discovery
// order. Names differing only in case appear once.
func (c *Collection) FileNames() []string {
	return c.index.FileNames()
}

// Len returns the number of assets.
func (c *Collection) Len() int {
	return c.index.Len()
}

// Suggest returns up to limit file names that fuzzily match name, best first.
// Only the last path segment of name is matched.
func (c *Collection) Suggest(name string, limit int) []string {
	pattern := strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	pattern = strings.TrimPrefix(pattern, c.prefix+".")
	pattern = strings.ToLower(path.Base(pattern))
	if pattern == "" || pattern == "." || pattern == "/" || limit <= 0 {
		return nil
	}

	files := c.FileNames()
	lower := make([]string, len(files))
	for i, f := range files {
		lower[i] = strings.ToLower(f)
	}

	matches := fuzzy.Find(pattern, lower)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, files[m.Index])
	}
	return out
}

// Err returns the enumeration error of the backing bundle, if any.
// A collection whose bundle failed to enumerate behaves as empty.
func (c *Collection) Err() error {
	return c.index.Err()
}
