// Package resolve turns caller-supplied asset names into canonical resource identifiers.
//
// # Identifiers
//
// A canonical identifier is a collection prefix followed by a dot-separated path:
//
//	assetkit.fonts.Cairo.Cairo-Bold.ttf
//	└─prefix─────┘ └folder┘ └─file─────┘
//
// # Index
//
// Index enumerates the identifiers of one collection and derives alias keys for each:
//
//	Cairo-Bold.ttf           filename (last two dot segments)
//	Cairo.Cairo-Bold.ttf     dot-qualified remainder
//	Cairo/Cairo-Bold.ttf     slash-qualified (first dot replaced)
//	Cairo\Cairo-Bold.ttf     backslash variant
//
// Keys are case-insensitive and the first identifier to claim a key keeps it.
// The index is built once, on first use, and never changes afterwards.
//
// # Resolver
//
// Resolver probes the index in a fixed order: literal identifier, alias keys with
// extension inference, alternate extensions, then candidates built from the shape
// of the name (folder/file, dotted, bare suffix scan).
//
// # Limitations
//
// Only one folder level is understood. An identifier such as
// prefix.JetBrains_Mono.static.JetBrainsMono-Thin.ttf produces the slash key
// "JetBrains_Mono/static.JetBrainsMono-Thin.ttf", so the natural spelling
// "JetBrains_Mono/static/JetBrainsMono-Thin.ttf" does not resolve. Its filename
// and dot-qualified forms still do.
package resolve
