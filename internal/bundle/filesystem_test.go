package bundle

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestNewFilesystem(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		b, err := NewFilesystem(tmpDir, "p", []string{"ttf"})
		if err != nil {
			t.Fatalf("NewFilesystem() error = %v", err)
		}
		if b == nil {
			t.Fatal("NewFilesystem() returned nil")
		}
		if !filepath.IsAbs(b.BasePath()) {
			t.Errorf("BasePath() = %q, want absolute", b.BasePath())
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystem("", "p", nil)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystem(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystem("/nonexistent/path/abc123xyz", "p", nil)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystem() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "file.txt")
		writeFile(t, filePath, "test")

		_, err := NewFilesystem(filePath, "p", nil)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystem() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemBundle_NamesAndOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "Cairo", "Cairo-Bold.ttf"), "custom-bold")
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "ignored")

	b, err := NewFilesystem(tmpDir, "assetkit.fonts", []string{"ttf"})
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}

	names, err := b.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 1 || names[0] != "assetkit.fonts.Cairo.Cairo-Bold.ttf" {
		t.Fatalf("Names() = %v", names)
	}

	rc, err := b.Open(names[0])
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "custom-bold" {
		t.Errorf("content = %q, want %q", data, "custom-bold")
	}

	if _, err := b.Open("assetkit.fonts.notes.txt"); !errors.Is(err, ErrNotInBundle) {
		t.Errorf("Open(filtered) error = %v, want ErrNotInBundle", err)
	}
}

func TestFilesystemBundle_Open_DeletedFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gone.ttf")
	writeFile(t, path, "x")

	b, err := NewFilesystem(tmpDir, "p", []string{"ttf"})
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}
	if _, err := b.Names(); err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	_, err = b.Open("p.gone.ttf")
	if !errors.Is(err, ErrNotInBundle) {
		t.Errorf("Open() error = %v, want ErrNotInBundle", err)
	}
}

func TestFilesystemBundle_Open_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.ttf")
	writeFile(t, secret, "secret")

	base := t.TempDir()
	if err := os.Symlink(secret, filepath.Join(base, "link.ttf")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	b, err := NewFilesystem(base, "p", []string{"ttf"})
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}

	names, err := b.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 1 || names[0] != "p.link.ttf" {
		t.Fatalf("Names() = %v, want [p.link.ttf]", names)
	}

	_, err = b.Open("p.link.ttf")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("Open() error = %v, want ErrPathTraversal", err)
	}
}

func TestFilesystemBundle_Open_SymlinkInside(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	base := t.TempDir()
	target := filepath.Join(base, "real", "Font.ttf")
	writeFile(t, target, "inside")
	if err := os.Symlink(target, filepath.Join(base, "alias.ttf")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	b, err := NewFilesystem(base, "p", []string{"ttf"})
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}

	rc, err := b.Open("p.alias.ttf")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	_ = rc.Close()
}
