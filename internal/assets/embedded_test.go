package assets

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestFS_Layout(t *testing.T) {
	t.Parallel()

	fsys := FS()

	for _, dir := range []string{SVGDir, UIIconsDir, FontsDir, StylesDir} {
		info, err := fs.Stat(fsys, dir)
		if err != nil {
			t.Errorf("fs.Stat(%q) error = %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", dir)
		}
	}
}

func TestFS_IconsAreSVG(t *testing.T) {
	t.Parallel()

	fsys := FS()

	for _, dir := range []string{SVGDir, UIIconsDir} {
		count := 0
		err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			count++
			if !strings.HasSuffix(p, ".svg") {
				t.Errorf("unexpected non-svg file %q", p)
				return nil
			}
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return err
			}
			if !strings.Contains(string(data), "<svg") {
				t.Errorf("%q does not contain an <svg> element", p)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WalkDir(%q) error = %v", dir, err)
		}
		if count == 0 {
			t.Errorf("%q holds no icons", dir)
		}
	}
}

func TestFS_Fonts(t *testing.T) {
	t.Parallel()

	fsys := FS()
	count := 0
	err := fs.WalkDir(fsys, FontsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".ttf") {
			return nil
		}
		count++
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if len(data) < 4 || string(data[:4]) != "\x00\x01\x00\x00" {
			t.Errorf("%q is not a TrueType font", p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir(%q) error = %v", FontsDir, err)
	}
	if count != 6 {
		t.Errorf("%q holds %d fonts, want 6", FontsDir, count)
	}
}

func TestFS_KnownFiles(t *testing.T) {
	t.Parallel()

	paths := []string{
		"svg/arrows/001-arrow-up.svg",
		"svg/general/132-add.svg",
		"uiicons/fi-tr-add.svg",
		"uiicons/fi-tr-user.svg",
		"fonts/README.md",
		"fonts/DejaVu_Sans/DejaVuSans.ttf",
		"fonts/DejaVu_Sans_Mono/DejaVuSansMono-Bold.ttf",
	}
	for _, p := range paths {
		if _, err := fs.Stat(FS(), p); err != nil {
			t.Errorf("fs.Stat(%q) error = %v", p, err)
		}
	}
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads default style",
			styleName:   DefaultStyle,
			wantContain: "border-collapse",
		},
		{
			name:        "loads dark style",
			styleName:   "dark",
			wantContain: "#0d1117",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for backslash traversal",
			styleName: `..\secret`,
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for name with dot",
			styleName: "default.css",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	want := []string{"dark", "default"}
	if len(names) != len(want) {
		t.Fatalf("StyleNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("StyleNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
