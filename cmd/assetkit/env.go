package main

import (
	"context"
	"io"
	"os"
	"time"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/render"
)

// PDFConverter prints an HTML document to PDF.
type PDFConverter interface {
	ToPDF(ctx context.Context, htmlContent, footer string) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ PDFConverter = (*render.PDFConverter)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, environment lookup, the registry factory and the PDF backend.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	NewRegistry func(opts ...assetkit.Option) (*assetkit.Registry, error)
	NewPDF      func(timeout time.Duration) PDFConverter
}

// DefaultEnv returns the production environment: embedded assets and a
// headless Chrome PDF backend.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		NewRegistry: assetkit.NewRegistry,
		NewPDF: func(timeout time.Duration) PDFConverter {
			return render.NewPDFConverter(timeout)
		},
	}
}
