package resolve

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Source lists the canonical identifiers available to a collection.
// Implementations may return identifiers of other collections; the index keeps
// only those carrying its prefix.
type Source interface {
	Names() ([]string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]string, error)

// Names calls f.
func (f SourceFunc) Names() ([]string, error) {
	return f()
}

// Stats describes a completed index build.
type Stats struct {
	Prefix   string
	Assets   int
	Aliases  int
	Duration time.Duration
	Err      error
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithBuildHook registers fn to be called once, after the index is built.
func WithBuildHook(fn func(Stats)) IndexOption {
	return func(x *Index) {
		x.onBuild = fn
	}
}

// Index is the lazily built, immutable lookup structure of one asset collection.
// All methods are safe for concurrent use. The first call pays for enumeration;
// every later call reads the published maps without locking.
type Index struct {
	prefix  string
	src     Source
	onBuild func(Stats)

	once   sync.Once
	builds atomic.Int32

	names   []string          // discovery order
	folded  []string          // fold(names[i])
	members map[string]string // fold(id) -> id
	aliases map[string]string // fold(alias) -> id
	err     error
}

// NewIndex creates an index over src for identifiers starting with prefix.
// Nothing is enumerated until the index is first used.
func NewIndex(prefix string, src Source, opts ...IndexOption) *Index {
	x := &Index{
		prefix: prefix,
		src:    src,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Prefix returns the collection prefix the index was created with.
func (x *Index) Prefix() string {
	return x.prefix
}

// Enumerate returns the canonical identifiers in discovery order.
// The returned slice is a copy.
func (x *Index) Enumerate() []string {
	x.load()
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Len returns the number of canonical identifiers.
func (x *Index) Len() int {
	x.load()
	return len(x.names)
}

// FileNames returns the filename key of every identifier in discovery order.
// Names differing only in case are listed once, with the first spelling seen.
func (x *Index) FileNames() []string {
	x.load()
	out := make([]string, 0, len(x.names))
	seen := make(map[string]bool, len(x.names))
	for _, id := range x.names {
		rest, _ := stripPrefix(id, x.prefix)
		name := FileKey(rest)
		k := fold(name)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, name)
	}
	return out
}

// AliasMap returns a copy of the alias table. Keys are case-folded.
func (x *Index) AliasMap() map[string]string {
	x.load()
	out := make(map[string]string, len(x.aliases))
	for k, v := range x.aliases {
		out[k] = v
	}
	return out
}

// Contains reports whether id is a member of the collection, ignoring case.
// It returns the identifier as stored.
func (x *Index) Contains(id string) (string, bool) {
	x.load()
	got, ok := x.members[fold(id)]
	return got, ok
}

// Lookup probes the alias table with key, ignoring case.
func (x *Index) Lookup(key string) (string, bool) {
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	x.load()
	got, ok := x.aliases[fold(key)]
	return got, ok
}

// Suffix returns the first identifier, in discovery order, ending with "."+file.
func (x *Index) Suffix(file string) (string, bool) {
	if file == "" {
		return "", false
	}
	x.load()
	want := "." + fold(file)
	for i, f := range x.folded {
		if strings.HasSuffix(f, want) {
			return x.names[i], true
		}
	}
	return "", false
}

// Err returns the enumeration error of the build, if any.
func (x *Index) Err() error {
	x.load()
	return x.err
}

// Builds reports how many times the index has been built: 0 before first use, 1 after.
func (x *Index) Builds() int {
	return int(x.builds.Load())
}

func (x *Index) load() {
	x.once.Do(x.build)
}

func (x *Index) build() {
	start := time.Now()
	x.builds.Add(1)

	x.members = make(map[string]string)
	x.aliases = make(map[string]string)

	names, err := x.src.Names()
	if err != nil {
		x.err = fmt.Errorf("%w: %q: %w", ErrEnumerate, x.prefix, err)
		names = nil
	}

	for _, id := range names {
		rest, ok := stripPrefix(id, x.prefix)
		if !ok {
			continue
		}
		key := fold(id)
		if _, dup := x.members[key]; dup {
			continue
		}
		x.members[key] = id
		x.names = append(x.names, id)
		x.folded = append(x.folded, key)

		x.addAlias(FileKey(rest), id)
		x.addAlias(rest, id)
		slash := SlashKey(rest)
		x.addAlias(slash, id)
		x.addAlias(strings.ReplaceAll(slash, "/", `\`), id)
	}

	// The full identifier is its own alias unless an earlier entry claimed it.
	for _, id := range x.names {
		x.addAlias(id, id)
	}

	if x.onBuild != nil {
		x.onBuild(Stats{
			Prefix:   x.prefix,
			Assets:   len(x.names),
			Aliases:  len(x.aliases),
			Duration: time.Since(start),
			Err:      x.err,
		})
	}
}

// addAlias registers key for id unless key is blank or already taken.
func (x *Index) addAlias(key, id string) {
	if strings.TrimSpace(key) == "" {
		return
	}
	k := fold(key)
	if _, taken := x.aliases[k]; taken {
		return
	}
	x.aliases[k] = id
}
