package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	assetkit "github.com/alnah/go-assetkit"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - in-memory fonts and a mock PDF backend
// ---------------------------------------------------------------------------

// testFontFS replaces the embedded fonts collection in CLI tests.
func testFontFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/Cairo/Cairo-Bold.ttf":      {Data: []byte("cairo-bold")},
		"fonts/Cairo/Cairo-Regular.ttf":   {Data: []byte("cairo-regular")},
		"fonts/Roboto/Roboto-Regular.otf": {Data: []byte("roboto-otf")},
		"fonts/consolas.ttf":              {Data: []byte("consolas")},
	}
}

// withEmptyFonts serves the fonts collection from an empty file system.
func (te *testEnv) withEmptyFonts() {
	empty := assetkit.CollectionSpec{
		Name:       assetkit.CollectionFonts,
		Prefix:     "assetkit.fonts",
		FS:         fstest.MapFS{},
		Extensions: []string{".ttf", ".otf"},
	}
	te.env.NewRegistry = func(opts ...assetkit.Option) (*assetkit.Registry, error) {
		return assetkit.NewRegistry(append([]assetkit.Option{assetkit.WithCollection(empty)}, opts...)...)
	}
}

// mockPDF records the HTML it was given and returns fixed bytes or err.
type mockPDF struct {
	html    string
	footer  string
	err     error
	closed  bool
	timeout time.Duration
}

func (m *mockPDF) ToPDF(_ context.Context, html, footer string) ([]byte, error) {
	m.html = html
	m.footer = footer
	if m.err != nil {
		return nil, m.err
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDF) Close() error {
	m.closed = true
	return nil
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	env    *Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pdf    *mockPDF
	vars   map[string]string
}

// newTestEnv returns an Environment whose fonts collection is served from
// memory and whose PDF backend is mocked. No process env var leaks in.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		pdf:    &mockPDF{},
		vars:   map[string]string{},
	}
	fonts := assetkit.CollectionSpec{
		Name:       assetkit.CollectionFonts,
		Prefix:     "assetkit.fonts",
		FS:         testFontFS(),
		Root:       "fonts",
		Extensions: []string{".ttf", ".otf"},
	}
	te.env = &Environment{
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(key string) string { return te.vars[key] },
		NewRegistry: func(opts ...assetkit.Option) (*assetkit.Registry, error) {
			return assetkit.NewRegistry(append([]assetkit.Option{assetkit.WithCollection(fonts)}, opts...)...)
		},
		NewPDF: func(timeout time.Duration) PDFConverter {
			te.pdf.timeout = timeout
			return te.pdf
		},
	}
	return te
}

// run invokes the CLI with args and returns the exit code.
func (te *testEnv) run(args ...string) int {
	return run(context.Background(), args, te.env)
}

// writeTestFile writes content to dir/name, creating parents.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
