package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// FSBundle exposes the files below root in an fs.FS as canonical identifiers.
// Only files whose extension is listed are included. The directory is walked
// once, on first use.
type FSBundle struct {
	fsys   fs.FS
	root   string
	prefix string
	exts   map[string]bool

	once  sync.Once
	names []string
	paths map[string]string // id -> path in fsys
	err   error
}

// NewFS creates an FSBundle over fsys. root is a slash-separated directory inside
// fsys ("." for the top). exts lists accepted extensions, with or without the dot;
// an empty list accepts every file.
func NewFS(fsys fs.FS, root, prefix string, exts []string) *FSBundle {
	if root == "" {
		root = "."
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return &FSBundle{
		fsys:   fsys,
		root:   path.Clean(root),
		prefix: prefix,
		exts:   set,
	}
}

// Prefix returns the collection prefix used to build identifiers.
func (b *FSBundle) Prefix() string {
	return b.prefix
}

// Names returns the identifiers of every accepted file in lexical walk order.
func (b *FSBundle) Names() ([]string, error) {
	b.once.Do(b.scan)
	if b.err != nil {
		return nil, b.err
	}
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out, nil
}

// Path returns the slash-separated path of id inside the underlying fs.FS.
func (b *FSBundle) Path(id string) (string, bool) {
	b.once.Do(b.scan)
	p, ok := b.paths[id]
	return p, ok
}

// Open opens the file behind id.
func (b *FSBundle) Open(id string) (io.ReadCloser, error) {
	p, ok := b.Path(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotInBundle, id)
	}

	f, err := b.fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotInBundle, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return f, nil
}

// ID returns the canonical identifier for a path relative to the bundle root.
func (b *FSBundle) ID(rel string) string {
	return b.prefix + "." + strings.ReplaceAll(rel, "/", ".")
}

func (b *FSBundle) scan() {
	b.paths = make(map[string]string)

	err := fs.WalkDir(b.fsys, b.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !b.accepts(p, d) {
			return nil
		}

		rel := p
		if b.root != "." {
			rel = strings.TrimPrefix(p, b.root+"/")
		}
		id := b.ID(rel)
		if _, dup := b.paths[id]; dup {
			// "a.b/c.svg" and "a/b.c.svg" collapse to the same identifier.
			return nil
		}
		b.paths[id] = p
		b.names = append(b.names, id)
		return nil
	})
	if err != nil {
		b.err = fmt.Errorf("%w: %s: %v", ErrWalk, b.root, err)
		b.names = nil
		b.paths = map[string]string{}
	}
}

// accepts reports whether the entry is a regular file (or a link to one)
// with an accepted extension.
func (b *FSBundle) accepts(p string, d fs.DirEntry) bool {
	if len(b.exts) > 0 && !b.exts[strings.ToLower(path.Ext(p))] {
		return false
	}
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := fs.Stat(b.fsys, p)
		return err == nil && info.Mode().IsRegular()
	}
	return false
}

// Compile-time interface check.
var _ Bundle = (*FSBundle)(nil)
