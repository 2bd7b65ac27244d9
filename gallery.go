package assetkit

import (
	"encoding/base64"
	"fmt"
	"io"
	"path"
	"strings"
)

// DefaultGalleryColumns is used when GalleryOptions.Columns is not positive.
const DefaultGalleryColumns = 4

// GalleryOptions controls GalleryMarkdown.
type GalleryOptions struct {
	Title      string // Empty = collection name
	Date       string // Printed under the title; empty omits it
	Columns    int
	ShowSource bool // Append the source of text assets as fenced code
}

// mimeTypes maps previewable extensions to data URI media types.
var mimeTypes = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// GalleryMarkdown renders the collection as a Markdown catalog: a GFM table
// with one cell per asset, previewing images inline as data URIs. Assets that
// cannot be previewed (fonts) are listed by name. Every asset is read, so a
// bundle mismatch is reported as an error.
func (c *Collection) GalleryMarkdown(opts GalleryOptions) (string, error) {
	title := opts.Title
	if title == "" {
		title = c.name
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = DefaultGalleryColumns
	}

	ids := c.ResourceNames()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(title))
	if opts.Date != "" {
		fmt.Fprintf(&b, "_%s_\n\n", escapeMarkdown(opts.Date))
	}
	fmt.Fprintf(&b, "%d assets in `%s`.\n\n", len(ids), c.prefix)

	if len(ids) == 0 {
		return b.String(), nil
	}

	b.WriteString("|" + strings.Repeat("   |", cols) + "\n")
	b.WriteString("|" + strings.Repeat("---|", cols) + "\n")

	type source struct {
		file string
		lang string
		data []byte
	}
	var sources []source

	for row := 0; row < len(ids); row += cols {
		b.WriteString("|")
		for col := 0; col < cols; col++ {
			i := row + col
			if i >= len(ids) {
				b.WriteString("   |")
				continue
			}

			data, err := c.readID(ids[i])
			if err != nil {
				return "", err
			}

			file := c.fileName(ids[i])
			ext := strings.ToLower(path.Ext(file))
			cell := "`" + escapeMarkdown(file) + "`"
			if mime, ok := mimeTypes[ext]; ok {
				uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
				cell = "![" + escapeMarkdown(file) + "](" + uri + ")<br>" + cell
			}
			b.WriteString(" " + cell + " |")

			if opts.ShowSource && ext == ".svg" {
				sources = append(sources, source{file: file, lang: "xml", data: data})
			}
		}
		b.WriteString("\n")
	}

	if len(sources) > 0 {
		b.WriteString("\n## Sources\n")
		for _, s := range sources {
			text := strings.TrimRight(string(s.data), "\n")
			fence := codeFence(text)
			fmt.Fprintf(&b, "\n### %s\n\n%s%s\n%s\n%s\n", escapeMarkdown(s.file), fence, s.lang, text, fence)
		}
	}

	return b.String(), nil
}

// codeFence returns a backtick fence longer than any backtick run in text.
func codeFence(text string) string {
	longest, run := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}

// readID reads a canonical identifier in full.
func (c *Collection) readID(id string) ([]byte, error) {
	rc, err := c.OpenResolved(id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", id, err)
	}
	return data, nil
}

// fileName returns the display name of an identifier: "Cairo/Cairo-Bold.ttf"
// for foldered assets, "consolas.ttf" for loose ones.
func (c *Collection) fileName(id string) string {
	rest := strings.TrimPrefix(id, c.prefix+".")
	parts := strings.Split(rest, ".")
	if len(parts) <= 2 {
		return rest
	}
	file := parts[len(parts)-2] + "." + parts[len(parts)-1]
	return strings.Join(parts[:len(parts)-2], "/") + "/" + file
}

// escapeMarkdown escapes characters that would break a table cell or heading.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer("|", `\|`, "[", `\[`, "]", `\]`, "`", "'", "\n", " ")
	return r.Replace(s)
}
