package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultHighlightStyle is the chroma style used for fenced code.
const DefaultHighlightStyle = "github"

// htmlTemplate wraps goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>%s</style>
</head>
<body>
%s
</body>
</html>`

// Page holds the document-level parts of the generated HTML.
type Page struct {
	Title string
	CSS   string
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, markdown string, page Page) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM tables and chroma
// highlighting in the given style. An empty style selects DefaultHighlightStyle.
func NewGoldmarkConverter(style string) (*GoldmarkConverter, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}
	if err := ValidateHighlightStyle(style); err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(strings.ToLower(style)),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles, the page has no chroma stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// Icons are inlined as data:image/svg+xml URIs, which goldmark
			// treats as dangerous unless unsafe rendering is on.
			goldmarkhtml.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}, nil
}

// ToHTML converts Markdown to a standalone HTML5 document.
// goldmark has no context support, so conversion runs in a goroutine and
// the call returns early when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, markdown string, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate,
			html.EscapeString(page.Title),
			sanitizeCSS(page.CSS),
			buf.String(),
		)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// ValidateHighlightStyle reports whether name is a registered chroma style.
func ValidateHighlightStyle(name string) error {
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightStyles lists the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sanitizeCSS escapes sequences that could close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
