// Package dateutil turns the gallery "date" setting into the text printed
// under the title and in the PDF footer.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a date setting that cannot be rendered.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds user supplied formats.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

// Presets are named formats accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens is longest first so "MMMM" wins over "MM".
var tokens = [...]struct{ in, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a format such as "DD/MM/YYYY" into a time layout.
// Text inside brackets is copied literally: "[Built] YYYY".
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		n := 1
		out := rest[:1]
		for _, tok := range tokens {
			if strings.HasPrefix(rest, tok.in) {
				n, out = len(tok.in), tok.layout
				break
			}
		}
		b.WriteString(out)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Stamp renders a date setting at now:
//
//	""             -> ""
//	"auto"         -> now as YYYY-MM-DD
//	"auto:FORMAT"  -> now in FORMAT or a preset name
//	anything else  -> returned as is
func Stamp(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultFormat
	if lower != "auto" {
		spec, ok := strings.CutPrefix(value[4:], ":")
		if !ok {
			return "", fmt.Errorf("%w: %q (use auto or auto:FORMAT)", ErrInvalidDateFormat, value)
		}
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			spec = preset
		}
		format = spec
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
