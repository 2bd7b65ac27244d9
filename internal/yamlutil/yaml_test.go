package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-assetkit/internal/yamlutil"
)

type testConfig struct {
	Name    string   `yaml:"name"`
	Workers int      `yaml:"workers"`
	Enabled bool     `yaml:"enabled"`
	Tags    []string `yaml:"tags"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: icons\nworkers: 4\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "icons" || cfg.Workers != 4 || !cfg.Enabled {
					t.Errorf("decoded = %+v", cfg)
				}
			},
		},
		{
			name: "unknown fields ignored",
			data: []byte("name: icons\nextra: 1"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				if v.(*testConfig).Name != "icons" {
					t.Errorf("Name = %q, want icons", v.(*testConfig).Name)
				}
			},
		},
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("name: x\ntags: [a, b]"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if len(cfg.Tags) != 2 {
			t.Errorf("Tags = %v, want 2 entries", cfg.Tags)
		}
	})

	t.Run("unknown field fails", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: x\nunknown: 1"), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix 'yamlutil:'", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestReadFileStrict - Reads and decodes files
// ---------------------------------------------------------------------------

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "ok.yaml")
		if err := os.WriteFile(path, []byte("name: fonts\nworkers: 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		if err := yamlutil.ReadFileStrict(path, &cfg); err != nil {
			t.Fatalf("ReadFileStrict() error = %v", err)
		}
		if cfg.Name != "fonts" || cfg.Workers != 2 {
			t.Errorf("decoded = %+v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.ReadFileStrict(filepath.Join(dir, "missing.yaml"), &cfg)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadFileStrict() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "empty.yaml")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		if err := yamlutil.ReadFileStrict(path, &cfg); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("ReadFileStrict() error = %v, want ErrNilData", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go values
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	got, err := yamlutil.Marshal(testConfig{Name: "svg", Workers: 3, Tags: []string{"a"}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"name: svg", "workers: 3", "- a"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("Marshal() = %q, missing %q", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Note: This test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests to avoid data races.

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	t.Run("input exceeding limit fails", func(t *testing.T) {
		yamlutil.MaxInputSize = 100
		data := make([]byte, 101)
		copy(data, []byte("name: x"))
		var cfg testConfig
		err := yamlutil.Unmarshal(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "max 100") {
			t.Errorf("error should contain max size, got: %s", err)
		}
	})

	t.Run("ReadFileStrict checks size before reading", func(t *testing.T) {
		yamlutil.MaxInputSize = 10
		path := filepath.Join(t.TempDir(), "big.yaml")
		if err := os.WriteFile(path, []byte("name: this is longer than ten bytes"), 0o644); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		err := yamlutil.ReadFileStrict(path, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
