// Package assetkit resolves friendly asset names (fonts, icons) to canonical
// identifiers and opens the bytes behind them.
//
// # Quick Start
//
// Create a registry and look an icon up the way a caller remembers it:
//
//	reg, err := assetkit.NewRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := reg.UIIcons().ReadFile("fi-tr-pen")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Names
//
// Every asset has a canonical identifier made of the collection prefix and its
// path with slashes replaced by dots:
//
//	fonts/DejaVu_Sans/DejaVuSans-Bold.ttf  ->  assetkit.fonts.DejaVu_Sans.DejaVuSans-Bold.ttf
//
// Resolution accepts the file name ("DejaVuSans-Bold.ttf"), the name without
// extension ("DejaVuSans-Bold"), a folder-qualified path with either separator
// ("DejaVu_Sans/DejaVuSans-Bold.ttf", `DejaVu_Sans\DejaVuSans-Bold`), the
// dotted remainder ("DejaVu_Sans.DejaVuSans-Bold.ttf") and the identifier
// itself. Matching ignores case one rune at a time, so "STRASSE" does not
// match "Straße", and decomposed accents match their composed form.
// When a font exists as both .ttf and .otf, the .ttf wins.
//
// Only one folder level is understood. Assets nested deeper are still listed
// and resolve by file name or identifier, but not by their full path.
//
// When two assets share a file name, the first one discovered owns the
// file-name alias; the other stays reachable by folder or identifier.
//
// # Lookup Styles
//
// TryResolve returns a boolean for tolerant callers. Resolve returns a
// *NotFoundError, and Require does the same for names the program cannot work
// without (the curated Font*, Icon* and UIIcon* constants):
//
//	id, err := reg.Fonts().Require(assetkit.FontSansBold)
//	if errors.Is(err, assetkit.ErrAssetNotFound) {
//	    ...
//	}
//
// # Collections
//
// The registry holds three built-in collections: "fonts", "svg" and "uiicons",
// all embedded in the binary. The fonts collection ships the DejaVu families;
// others are added from a directory:
//
//	reg, err := assetkit.NewRegistry(
//	    assetkit.WithCollectionDir(assetkit.CollectionFonts, "/usr/share/assetkit/fonts"),
//	)
//
// A directory layered with WithCollectionDir takes precedence over embedded
// files with the same identifier. Additional collections are registered with
// WithCollection, and any collection's storage can be replaced with WithBundle.
//
// Each collection enumerates its bundle once, on first use, and is safe for
// concurrent use afterwards.
package assetkit
