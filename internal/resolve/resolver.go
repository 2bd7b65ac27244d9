package resolve

import (
	"strings"
)

// Options configures a Resolver.
type Options struct {
	// Prefix is the collection prefix. Names starting with it are treated as
	// canonical identifiers and only checked for membership.
	Prefix string

	// Extensions lists the recognized asset extensions in preference order.
	// The first one is appended to names that carry none.
	Extensions []string

	// BaseNameFallback retries the last path segment of a folder-qualified
	// name as a plain filename when nothing else matched.
	BaseNameFallback bool
}

// Resolver maps caller-supplied names to canonical identifiers of one collection.
// It holds no mutable state of its own and is safe for concurrent use.
type Resolver struct {
	idx      *Index
	prefix   string
	exts     []string
	baseName bool
}

// NewResolver creates a Resolver reading from idx.
func NewResolver(idx *Index, opts Options) *Resolver {
	return &Resolver{
		idx:      idx,
		prefix:   opts.Prefix,
		exts:     normalizeExtensions(opts.Extensions),
		baseName: opts.BaseNameFallback,
	}
}

// Index returns the index the resolver reads from.
func (r *Resolver) Index() *Index {
	return r.idx
}

// Extensions returns the recognized extensions, default first.
func (r *Resolver) Extensions() []string {
	out := make([]string, len(r.exts))
	copy(out, r.exts)
	return out
}

// Resolve returns the canonical identifier for nameOrFile.
//
// Accepted shapes: "Cairo-Bold.ttf", "Cairo-Bold", "Cairo.Cairo-Bold.ttf",
// "Cairo/Cairo-Bold.ttf", "Cairo\Cairo-Bold.ttf" and the identifier itself.
// Blank input is never found.
func (r *Resolver) Resolve(nameOrFile string) (string, bool) {
	if strings.TrimSpace(nameOrFile) == "" {
		return "", false
	}

	if r.prefix != "" && strings.HasPrefix(nameOrFile, r.prefix) {
		return r.idx.Contains(nameOrFile)
	}

	key := strings.ReplaceAll(strings.TrimSpace(nameOrFile), `\`, "/")
	candidates := r.candidates(key)

	for _, c := range candidates {
		if id, ok := r.idx.Lookup(c); ok {
			return id, true
		}
	}

	if id, ok := r.fromShape(candidates[0]); ok {
		return id, true
	}

	if r.baseName {
		for _, c := range candidates {
			i := strings.LastIndexByte(c, '/')
			if i < 0 {
				break
			}
			if id, ok := r.idx.Lookup(c[i+1:]); ok {
				return id, true
			}
		}
	}

	return "", false
}

// HasExtension reports whether name ends with a recognized extension, ignoring case.
func (r *Resolver) HasExtension(name string) bool {
	f := fold(name)
	for _, ext := range r.exts {
		if strings.HasSuffix(f, ext) {
			return true
		}
	}
	return false
}

// candidates returns key when it already carries an extension, otherwise key
// with each recognized extension appended in preference order.
func (r *Resolver) candidates(key string) []string {
	if len(r.exts) == 0 || r.HasExtension(key) {
		return []string{key}
	}
	out := make([]string, len(r.exts))
	for i, ext := range r.exts {
		out[i] = key + ext
	}
	return out
}

// fromShape builds an identifier from the layout of key and tests membership.
//
//	folder/file.ext  -> prefix.folder.file.ext
//	folder.file.ext  -> prefix.folder.file.ext
//	anything else    -> first identifier ending with ".key"
func (r *Resolver) fromShape(key string) (string, bool) {
	switch {
	case strings.Contains(key, "/"):
		parts := strings.Split(key, "/")
		if len(parts) == 2 {
			return r.idx.Contains(r.join(parts[0], parts[1]))
		}
	case strings.Contains(key, "."):
		return r.idx.Contains(r.join(key))
	}
	return r.idx.Suffix(key)
}

func (r *Resolver) join(parts ...string) string {
	if r.prefix == "" {
		return strings.Join(parts, ".")
	}
	return r.prefix + "." + strings.Join(parts, ".")
}
