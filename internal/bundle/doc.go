// Package bundle provides the read-only sources that back asset collections.
//
// # Bundle Architecture
//
//	Bundle (interface)
//	    │
//	    ├── FSBundle          - any fs.FS (go:embed data, fstest.MapFS in tests)
//	    ├── FilesystemBundle  - a directory on disk, with containment checks
//	    └── Overlay           - custom bundle first, fallback bundle second
//
// Every bundle names its files with canonical identifiers: the collection prefix
// followed by the file path relative to the bundle root, with "/" turned into ".":
//
//	{root}/Cairo/Cairo-Bold.ttf  ->  {prefix}.Cairo.Cairo-Bold.ttf
//
// The mapping is lossy, so each bundle keeps the identifier -> path table it built
// while walking and only opens identifiers found in it.
//
// # Security
//
// FilesystemBundle resolves symlinks and refuses to open files outside its base path.
package bundle
