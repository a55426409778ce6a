package shikaku

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := ParseGrid(strings.NewReader(s))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestParseGrid(t *testing.T) {
	g := mustParse(t, "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")
	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("got %dx%d, want 4x4", g.Rows(), g.Cols())
	}
	clues := g.Clues()
	want := []Clue{{0, 0, 4}, {0, 3, 4}, {3, 1, 8}}
	if len(clues) != len(want) {
		t.Fatalf("got %d clues, want %d", len(clues), len(want))
	}
	for i, c := range clues {
		if c != want[i] {
			t.Errorf("clue %d: got %+v, want %+v", i, c, want[i])
		}
	}
}

func TestParseGridDelimiters(t *testing.T) {
	// Commas, tabs and comments are all accepted.
	g := mustParse(t, "# sample\n2,0\n0\t2\n")
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", g.Rows(), g.Cols())
	}
}

func TestParseGridErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"ragged rows", "1 2\n3\n"},
		{"negative value", "2 -1\n0 0\n"},
		{"non-integer token", "2 x\n0 0\n"},
		{"empty input", "\n\n"},
		{"no clues", "0 0\n0 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(strings.NewReader(tc.input)); err == nil {
				t.Errorf("ParseGrid(%q): expected error", tc.input)
			}
		})
	}
}

func TestGridRoundTrip(t *testing.T) {
	g := mustParse(t, "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")

	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if loaded.String() != g.String() {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", g, loaded)
	}
}
