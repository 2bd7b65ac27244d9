package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fold returns the case-insensitive form of s used for every lookup key.
// Case is mapped rune by rune, so no rune expands: "STRASSE" and "Straße"
// stay distinct. Names are composed to NFC first because directory listings
// on some systems return decomposed accents.
func fold(s string) string {
	return strings.Map(foldRune, norm.NFC.String(s))
}

func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

// stripPrefix removes "prefix." from id. ok is false when id is outside the collection.
func stripPrefix(id, prefix string) (rest string, ok bool) {
	if prefix == "" {
		return id, id != ""
	}
	rest, ok = strings.CutPrefix(id, prefix+".")
	return rest, ok && rest != ""
}

// FileKey returns the filename-with-extension of a stripped identifier:
// "Cairo.Cairo-Bold.ttf" -> "Cairo-Bold.ttf". A remainder with a single
// segment is returned as is.
func FileKey(rest string) string {
	parts := strings.Split(rest, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "." + parts[len(parts)-1]
	}
	return rest
}

// SlashKey replaces the first dot of a stripped identifier with a slash:
// "Cairo.Cairo-Bold.ttf" -> "Cairo/Cairo-Bold.ttf".
// Assumes exactly one folder level; deeper paths are mis-split.
func SlashKey(rest string) string {
	if i := strings.IndexByte(rest, '.'); i > 0 {
		return rest[:i] + "/" + rest[i+1:]
	}
	return rest
}

// normalizeExtensions lowercases extensions and gives each a leading dot.
// Empty entries and duplicates are dropped; order is kept.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		ext = fold(ext)
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
