package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)
