// Package assets holds the data compiled into the binary.
//
// # Layout
//
//	svg/        - general icon set, one folder per category
//	uiicons/    - flat UI icon set (fi-tr-*.svg)
//	fonts/      - DejaVu families, one folder per family (LICENSE-DejaVu.txt)
//	styles/     - gallery stylesheets ({name}.css)
//
// FS exposes the tree as an fs.FS so bundles can enumerate it with fs.WalkDir.
// Folder names become segments of canonical identifiers, so a file at
// svg/arrows/001-arrow-up.svg is published as assetkit.svg.arrows.001-arrow-up.svg.
//
// # Security
//
// Style names are validated before lookup: separators, dots and empty names
// are rejected with ErrInvalidAssetName.
package assets
