// Package render turns gallery Markdown into a standalone HTML page and,
// optionally, into PDF.
//
// HTML conversion uses goldmark with GFM tables and chroma highlighting of
// fenced code. Raw HTML and data: URIs are allowed because the Markdown is
// generated from the asset collections, never from user documents.
//
// PDF rendering drives headless Chrome through go-rod. The browser is started
// lazily on the first render and reused until Close. Set ROD_BROWSER_BIN to use
// an installed browser instead of the one rod downloads.
package render
