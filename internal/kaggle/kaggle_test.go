package kaggle

import (
	"bytes"
	"strings"
	"testing"
)

func TestParsePuzzleTypeRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want PuzzleType
	}{
		{"cube_3/3/3", PuzzleType{Family: FamilyCube, Dims: []int{3, 3, 3}}},
		{"wreath_6/6", PuzzleType{Family: FamilyWreath, Dims: []int{6, 6}}},
		{"globe_3/4", PuzzleType{Family: FamilyGlobe, Dims: []int{3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParsePuzzleType(tt.text)
			if err != nil {
				t.Fatalf("ParsePuzzleType(%q): %v", tt.text, err)
			}
			if got.Family != tt.want.Family || len(got.Dims) != len(tt.want.Dims) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got.Dims {
				if got.Dims[i] != tt.want.Dims[i] {
					t.Errorf("dim %d: got %d, want %d", i, got.Dims[i], tt.want.Dims[i])
				}
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q, want %q", got.String(), tt.text)
			}
		})
	}
}

func TestParsePuzzleTypeErrors(t *testing.T) {
	for _, s := range []string{"", "cube", "pyraminx_3/3/3", "cube_x/3/3"} {
		if _, err := ParsePuzzleType(s); err == nil {
			t.Errorf("ParsePuzzleType(%q) should have errored", s)
		}
	}
}

func TestReadWritePuzzlesRoundTrip(t *testing.T) {
	puzzles := []Puzzle{
		{ID: "0", Type: PuzzleType{Family: FamilyCube, Dims: []int{3, 3, 3}},
			Target: []string{"A", "B"}, Initial: []string{"B", "A"}, Wildcards: 0},
		{ID: "1", Type: PuzzleType{Family: FamilyWreath, Dims: []int{6, 6}},
			Target: []string{"A", "A", "B"}, Initial: []string{"A", "B", "A"}, Wildcards: 2},
	}
	var buf bytes.Buffer
	if err := WritePuzzles(&buf, puzzles); err != nil {
		t.Fatalf("WritePuzzles: %v", err)
	}
	got, err := ReadPuzzles(&buf)
	if err != nil {
		t.Fatalf("ReadPuzzles: %v", err)
	}
	if len(got) != len(puzzles) {
		t.Fatalf("got %d puzzles, want %d", len(got), len(puzzles))
	}
	for i, p := range puzzles {
		if got[i].ID != p.ID || got[i].Type.String() != p.Type.String() || got[i].Wildcards != p.Wildcards {
			t.Errorf("puzzle %d round-trip mismatch: got %+v, want %+v", i, got[i], p)
		}
	}
}

func TestReadPuzzlesMissingColumn(t *testing.T) {
	r := strings.NewReader("id,puzzle_type\n0,cube_3/3/3\n")
	if _, err := ReadPuzzles(r); err == nil {
		t.Fatal("expected an error for a CSV missing required columns")
	}
}

func TestWithinWildcards(t *testing.T) {
	target := []string{"A", "B", "C"}
	tests := []struct {
		got       []string
		wildcards int
		want      bool
	}{
		{[]string{"A", "B", "C"}, 0, true},
		{[]string{"A", "X", "C"}, 0, false},
		{[]string{"A", "X", "C"}, 1, true},
		{[]string{"X", "X", "X"}, 2, false},
	}
	for _, tt := range tests {
		if got := WithinWildcards(tt.got, target, tt.wildcards); got != tt.want {
			t.Errorf("WithinWildcards(%v, %v, %d) = %v, want %v", tt.got, target, tt.wildcards, got, tt.want)
		}
	}
}
