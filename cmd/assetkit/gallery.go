package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/assets"
	"github.com/alnah/go-assetkit/internal/config"
	"github.com/alnah/go-assetkit/internal/dateutil"
	"github.com/alnah/go-assetkit/internal/fileutil"
	"github.com/alnah/go-assetkit/internal/hints"
	"github.com/alnah/go-assetkit/internal/render"
)

// gallerySettings is the merged gallery configuration: config file, then flags.
type gallerySettings struct {
	title   string
	date    string
	columns int
	source  bool
	style   string
	theme   string
	timeout time.Duration
}

// runGallery renders a collection catalog to Markdown, HTML or PDF.
func runGallery(ctx context.Context, args []string, env *Environment) error {
	f := &galleryFlags{}
	fs := galleryFlagSet(f)
	positional, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: gallery needs one collection", ErrUsage)
	}

	kind, err := outputKind(f.output)
	if err != nil {
		return err
	}

	s, err := openSession(f.common, positional[0], env)
	if err != nil {
		return err
	}
	c, err := s.collection(positional[0])
	if err != nil {
		return err
	}

	settings, err := mergeGallerySettings(fs, f, s.cfg)
	if err != nil {
		return err
	}

	md, err := c.GalleryMarkdown(assetkit.GalleryOptions{
		Title:      settings.title,
		Date:       settings.date,
		Columns:    settings.columns,
		ShowSource: settings.source,
	})
	if err != nil {
		return err
	}
	if c.Len() == 0 {
		s.logger.Warn().Str("collection", c.Name()).Msg("gallery of an empty collection")
	}

	if kind == ".md" {
		return writeGallery(f.output, []byte(md), env)
	}

	html, err := galleryHTML(ctx, md, c, settings)
	if err != nil {
		return err
	}
	if kind != ".pdf" {
		return writeGallery(f.output, []byte(html), env)
	}

	s.logger.Debug().Dur("timeout", settings.timeout).Msg("printing gallery to PDF")

	ctx, cancel := context.WithTimeout(ctx, settings.timeout)
	defer cancel()

	pdf := env.NewPDF(settings.timeout)
	defer pdf.Close()

	footer := settings.title
	if footer == "" {
		footer = c.Name()
	}
	if settings.date != "" {
		footer += ", " + settings.date
	}
	data, err := pdf.ToPDF(ctx, html, footer)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return withHint(err, hints.ForTimeout())
		case errors.Is(err, render.ErrBrowserConnect):
			return withHint(err, hints.ForBrowserConnect())
		}
		return err
	}
	return writeGallery(f.output, data, env)
}

// outputKind returns ".md", ".html" or ".pdf" for the output path.
// An empty path means HTML on stdout.
func outputKind(output string) (string, error) {
	if output == "" {
		return ".html", nil
	}
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".md", ".pdf":
		return ext, nil
	case ".html", ".htm":
		return ".html", nil
	default:
		return "", fmt.Errorf("%w: %q (use .md, .html or .pdf)", ErrUnsupportedOutput, output)
	}
}

// mergeGallerySettings applies flags over the config file. Flags win only
// when set explicitly.
func mergeGallerySettings(fs *flag.FlagSet, f *galleryFlags, cfg *config.Config) (*gallerySettings, error) {
	s := &gallerySettings{
		title:   cfg.Gallery.Title,
		date:    cfg.Gallery.Date,
		columns: cfg.Gallery.Columns,
		source:  cfg.Gallery.ShowSource,
		style:   cfg.Gallery.Style,
		theme:   cfg.Gallery.Theme,
		timeout: render.DefaultTimeout,
	}

	if fs.Changed("title") {
		s.title = f.title
	}
	if fs.Changed("date") {
		s.date = f.date
	}
	if fs.Changed("columns") {
		s.columns = f.columns
	}
	if fs.Changed("source") {
		s.source = f.source
	}
	if fs.Changed("style") {
		s.style = f.style
	}
	if fs.Changed("theme") {
		s.theme = f.theme
	}

	if s.columns == 0 {
		s.columns = assetkit.DefaultGalleryColumns
	}
	if s.columns < 1 || s.columns > config.MaxColumns {
		return nil, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidColumns, s.columns, config.MaxColumns)
	}
	if s.style == "" {
		s.style = render.DefaultHighlightStyle
	}
	if s.theme == "" {
		s.theme = assets.DefaultStyle
	}

	date, err := dateutil.Stamp(s.date, time.Now())
	if err != nil {
		return nil, err
	}
	s.date = date

	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, f.timeout, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, f.timeout)
		}
		s.timeout = d
	}

	return s, nil
}

// galleryHTML converts the gallery Markdown into a standalone page styled
// with the selected embedded stylesheet.
func galleryHTML(ctx context.Context, md string, c *assetkit.Collection, s *gallerySettings) (string, error) {
	css, err := assets.LoadStyle(s.theme)
	if err != nil {
		return "", withHint(err, hints.ForStyleNotFound(assets.StyleNames()))
	}

	conv, err := render.NewGoldmarkConverter(s.style)
	if err != nil {
		return "", withHint(err, hints.ForStyleNotFound(render.HighlightStyles()))
	}

	title := s.title
	if title == "" {
		title = c.Name()
	}
	return conv.ToHTML(ctx, md, render.Page{Title: title, CSS: css})
}

// writeGallery writes to path, or to stdout when path is empty.
func writeGallery(path string, data []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return writeFailed(err)
		}
		return nil
	}
	if err := fileutil.WriteOutput(path, data); err != nil {
		return writeFailed(err)
	}
	return nil
}
