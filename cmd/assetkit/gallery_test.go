package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/config"
	"github.com/alnah/go-assetkit/internal/render"
)

// ---------------------------------------------------------------------------
// TestRunGallery - Output formats
// ---------------------------------------------------------------------------

func TestRunGallery_HTMLToStdout(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if code := te.run("gallery", "uiicons", "--title", "UI Icons"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	out := te.stdout.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>UI Icons</title>", "<table>", "data:image/svg+xml;base64,"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestRunGallery_Markdown(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "fonts.md")

	te := newTestEnv(t)
	if code := te.run("gallery", "fonts", "-o", out, "--columns", "2"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	md := string(data)
	if !strings.HasPrefix(md, "# fonts\n") {
		t.Errorf("Markdown should start with the collection title:\n%s", md)
	}
	if !strings.Contains(md, "|---|---|\n") {
		t.Errorf("Markdown should have a two-column table:\n%s", md)
	}
}

func TestRunGallery_PDF(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "svg.pdf")

	te := newTestEnv(t)
	if code := te.run("gallery", "svg", "-o", out, "-t", "5s", "--theme", "dark"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("output = %q, want PDF bytes", data)
	}
	if te.pdf.timeout != 5*time.Second {
		t.Errorf("PDF timeout = %v, want 5s", te.pdf.timeout)
	}
	if te.pdf.footer != "svg" {
		t.Errorf("PDF footer = %q, want collection name", te.pdf.footer)
	}
	if !strings.Contains(te.pdf.html, "<table>") {
		t.Error("PDF backend should receive the gallery HTML")
	}
	if !te.pdf.closed {
		t.Error("PDF backend should be closed")
	}
}

func TestRunGallery_DateInFooter(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "icons.pdf")

	te := newTestEnv(t)
	if code := te.run("gallery", "uiicons", "-o", out, "--title", "Icons", "--date", "Spring 2026"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}
	if te.pdf.footer != "Icons, Spring 2026" {
		t.Errorf("PDF footer = %q, want %q", te.pdf.footer, "Icons, Spring 2026")
	}
	if !strings.Contains(te.pdf.html, "Spring 2026") {
		t.Error("date should be printed under the title")
	}
}

func TestRunGallery_PDFErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStderr string
	}{
		{name: "browser", err: render.ErrBrowserConnect, wantCode: ExitBrowser, wantStderr: render.ErrBrowserConnect.Error()},
		{name: "timeout", err: errors.Join(render.ErrPDFGeneration, context.DeadlineExceeded), wantCode: ExitBrowser, wantStderr: "--timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			te.pdf.err = tt.err

			out := filepath.Join(t.TempDir(), "svg.pdf")
			if code := te.run("gallery", "svg", "-o", out); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", te.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunGallery_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "no collection", args: []string{"gallery"}, wantCode: ExitUsage},
		{name: "bad extension", args: []string{"gallery", "svg", "-o", "out.docx"}, wantCode: ExitUsage},
		{name: "bad columns", args: []string{"gallery", "svg", "--columns", "13"}, wantCode: ExitUsage},
		{name: "bad timeout", args: []string{"gallery", "svg", "-t", "soon"}, wantCode: ExitUsage},
		{name: "unknown theme", args: []string{"gallery", "svg", "--theme", "neon"}, wantCode: ExitUsage},
		{name: "bad date", args: []string{"gallery", "svg", "--date", "auto:[x"}, wantCode: ExitUsage},
		{name: "unknown style", args: []string{"gallery", "svg", "--style", "not-a-style"}, wantCode: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			if code := te.run(tt.args...); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, te.stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestOutputKind - Extension to format
// ---------------------------------------------------------------------------

func TestOutputKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{output: "", want: ".html"},
		{output: "a.md", want: ".md"},
		{output: "a.HTML", want: ".html"},
		{output: "a.htm", want: ".html"},
		{output: "dir/a.pdf", want: ".pdf"},
		{output: "a.txt", wantErr: true},
		{output: "noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			t.Parallel()

			got, err := outputKind(tt.output)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedOutput) {
					t.Errorf("outputKind(%q) error = %v, want ErrUnsupportedOutput", tt.output, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("outputKind(%q) unexpected error: %v", tt.output, err)
			}
			if got != tt.want {
				t.Errorf("outputKind(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeGallerySettings - Config then explicit flags
// ---------------------------------------------------------------------------

func TestMergeGallerySettings(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Gallery = config.GalleryConfig{Title: "From Config", Columns: 6, Style: "monokai", Theme: "dark"}

	t.Run("config only", func(t *testing.T) {
		t.Parallel()

		f := &galleryFlags{}
		fs := galleryFlagSet(f)
		if _, err := parseFlags(fs, nil); err != nil {
			t.Fatalf("parseFlags() unexpected error: %v", err)
		}

		s, err := mergeGallerySettings(fs, f, cfg)
		if err != nil {
			t.Fatalf("mergeGallerySettings() unexpected error: %v", err)
		}
		if s.title != "From Config" || s.columns != 6 || s.style != "monokai" || s.theme != "dark" {
			t.Errorf("settings = %+v, want config values", s)
		}
		if s.timeout != render.DefaultTimeout {
			t.Errorf("timeout = %v, want %v", s.timeout, render.DefaultTimeout)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()

		f := &galleryFlags{}
		fs := galleryFlagSet(f)
		if _, err := parseFlags(fs, []string{"--title", "From Flag", "--columns", "3", "--theme", "default"}); err != nil {
			t.Fatalf("parseFlags() unexpected error: %v", err)
		}

		s, err := mergeGallerySettings(fs, f, cfg)
		if err != nil {
			t.Fatalf("mergeGallerySettings() unexpected error: %v", err)
		}
		if s.title != "From Flag" || s.columns != 3 || s.theme != "default" {
			t.Errorf("settings = %+v, want flag values", s)
		}
		if s.style != "monokai" {
			t.Errorf("style = %q, unset flag should keep config value", s.style)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f := &galleryFlags{}
		fs := galleryFlagSet(f)
		if _, err := parseFlags(fs, nil); err != nil {
			t.Fatalf("parseFlags() unexpected error: %v", err)
		}

		empty := &config.Config{}
		s, err := mergeGallerySettings(fs, f, empty)
		if err != nil {
			t.Fatalf("mergeGallerySettings() unexpected error: %v", err)
		}
		if s.columns != assetkit.DefaultGalleryColumns {
			t.Errorf("columns = %d, want %d", s.columns, assetkit.DefaultGalleryColumns)
		}
		if s.style != render.DefaultHighlightStyle {
			t.Errorf("style = %q, want %q", s.style, render.DefaultHighlightStyle)
		}
		if s.theme != "default" {
			t.Errorf("theme = %q, want default", s.theme)
		}
	})
}
