package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Directories inside FS.
const (
	SVGDir     = "svg"
	UIIconsDir = "uiicons"
	FontsDir   = "fonts"
	StylesDir  = "styles"
)

// DefaultStyle is the gallery stylesheet used when none is configured.
const DefaultStyle = "default"

//go:embed svg uiicons fonts styles
var content embed.FS

// FS returns the embedded asset tree.
func FS() fs.FS {
	return content
}

// LoadStyle returns the gallery stylesheet with the given name (without .css).
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := content.ReadFile(StylesDir + "/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(data), nil
}

// StyleNames lists the embedded gallery stylesheets, sorted.
func StyleNames() []string {
	entries, err := content.ReadDir(StylesDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".css" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	return names
}

// ValidateAssetName rejects names that could escape the styles directory
// or change the file extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
