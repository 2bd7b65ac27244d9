package main

import (
	"errors"
	"os"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/assets"
	"github.com/alnah/go-assetkit/internal/bundle"
	"github.com/alnah/go-assetkit/internal/config"
	"github.com/alnah/go-assetkit/internal/dateutil"
	"github.com/alnah/go-assetkit/internal/fileutil"
	"github.com/alnah/go-assetkit/internal/render"
)

// Exit codes for the assetkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Command succeeded
	ExitGeneral  = 1 // General/unexpected error, failed verification
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied, unreadable asset
	ExitBrowser  = 4 // Browser/Chrome errors
	ExitNotFound = 5 // A name did not resolve
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, render.ErrBrowserConnect) ||
		errors.Is(err, render.ErrPageCreate) ||
		errors.Is(err, render.ErrPageLoad) ||
		errors.Is(err, render.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Resolution misses (exit 5)
	if errors.Is(err, assetkit.ErrAssetNotFound) {
		return ExitNotFound
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, assetkit.ErrBundleMismatch) ||
		errors.Is(err, bundle.ErrAssetRead) ||
		errors.Is(err, fileutil.ErrOutputDirectory) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidColumns) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedOutput) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, assetkit.ErrUnknownCollection) ||
		errors.Is(err, assetkit.ErrInvalidCollection) ||
		errors.Is(err, bundle.ErrInvalidBasePath) ||
		errors.Is(err, render.ErrUnknownHighlightStyle) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
