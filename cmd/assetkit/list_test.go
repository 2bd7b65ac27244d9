package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

// ---------------------------------------------------------------------------
// TestRunList - Collection summaries
// ---------------------------------------------------------------------------

func TestRunList_Summaries(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if code := te.run("list"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	out := te.stdout.String()
	for _, want := range []string{"COLLECTION", "fonts", "assetkit.fonts", ".ttf,.otf", "svg", "uiicons"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList_SummariesJSON(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if code := te.run("list", "--format", "json"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	var sums []collectionSummary
	if err := json.Unmarshal(te.stdout.Bytes(), &sums); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, te.stdout)
	}
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	if sums[0].Name != "fonts" || sums[0].Assets != 4 {
		t.Errorf("sums[0] = %+v, want fonts with 4 assets", sums[0])
	}
}

// ---------------------------------------------------------------------------
// TestRunList_Collection - Identifiers and file names of one collection
// ---------------------------------------------------------------------------

func TestRunList_Collection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "identifiers",
			args: []string{"list", "fonts"},
			want: "assetkit.fonts.Cairo.Cairo-Bold.ttf\n" +
				"assetkit.fonts.Cairo.Cairo-Regular.ttf\n" +
				"assetkit.fonts.Roboto.Roboto-Regular.otf\n" +
				"assetkit.fonts.consolas.ttf\n",
		},
		{
			name: "file names",
			args: []string{"list", "fonts", "--files"},
			want: "Cairo-Bold.ttf\nCairo-Regular.ttf\nRoboto-Regular.otf\nconsolas.ttf\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			if code := te.run(tt.args...); code != ExitSuccess {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
			}
			if te.stdout.String() != tt.want {
				t.Errorf("stdout = %q, want %q", te.stdout, tt.want)
			}
		})
	}
}

func TestRunList_CollectionYAML(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if code := te.run("list", "fonts", "--files", "-f", "YAML"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}

	var names []string
	if err := yaml.Unmarshal(te.stdout.Bytes(), &names); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, te.stdout)
	}
	if len(names) != 4 || names[0] != "Cairo-Bold.ttf" {
		t.Errorf("names = %v", names)
	}
}

func TestRunList_EmptyCollectionJSON(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	te.withEmptyFonts()

	if code := te.run("list", "fonts", "-f", "json"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, te.stderr)
	}
	if strings.TrimSpace(te.stdout.String()) != "[]" {
		t.Errorf("stdout = %q, want an empty JSON array", te.stdout)
	}
}

func TestRunList_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "bad format", args: []string{"list", "-f", "xml"}, wantStderr: "invalid output format"},
		{name: "two collections", args: []string{"list", "fonts", "svg"}, wantStderr: "at most one collection"},
		{name: "unknown collection", args: []string{"list", "pictures"}, wantStderr: "unknown collection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			if code := te.run(tt.args...); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", te.stderr, tt.wantStderr)
			}
		})
	}
}
