// Package kaggle parses the competition's puzzle CSV format (spec.md
// §6): one record per puzzle, naming its family/order, target and
// initial colorings, and a wildcard tolerance.
package kaggle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Family names one of the three supported puzzle kernels.
type Family string

const (
	FamilyCube   Family = "cube"
	FamilyWreath Family = "wreath"
	FamilyGlobe  Family = "globe"
)

// PuzzleType is the parsed form of a puzzle_type column value such as
// "cube_3/3/3", "wreath_6/6", or "globe_3/4".
type PuzzleType struct {
	Family Family
	Dims   []int
}

// ParsePuzzleType parses strings of the form "<family>_<d>/<d>[/<d>]".
func ParsePuzzleType(s string) (PuzzleType, error) {
	us := strings.SplitN(s, "_", 2)
	if len(us) != 2 {
		return PuzzleType{}, fmt.Errorf("%w: malformed puzzle type %q", xerr.InvalidInput, s)
	}
	fam := Family(us[0])
	switch fam {
	case FamilyCube, FamilyWreath, FamilyGlobe:
	default:
		return PuzzleType{}, fmt.Errorf("%w: unknown puzzle family %q", xerr.InvalidInput, us[0])
	}
	parts := strings.Split(us[1], "/")
	dims := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return PuzzleType{}, fmt.Errorf("%w: bad dimension %q in puzzle type %q", xerr.InvalidInput, p, s)
		}
		dims[i] = n
	}
	return PuzzleType{Family: fam, Dims: dims}, nil
}

func (t PuzzleType) String() string {
	parts := make([]string, len(t.Dims))
	for i, d := range t.Dims {
		parts[i] = strconv.Itoa(d)
	}
	return string(t.Family) + "_" + strings.Join(parts, "/")
}

// Puzzle is one parsed CSV record.
type Puzzle struct {
	ID         string
	Type       PuzzleType
	Target     []string // per-facelet color labels, in canonical scan order
	Initial    []string
	Wildcards  int
}

// ParseColoring splits a semicolon-joined coloring string into its
// per-facelet color labels.
func ParseColoring(s string) []string {
	return strings.Split(s, ";")
}

// FormatColoring joins per-facelet color labels back into the
// semicolon-separated CSV representation.
func FormatColoring(labels []string) string {
	return strings.Join(labels, ";")
}

// ReadPuzzles parses a Kaggle puzzles.csv from r. The expected header
// is: id,puzzle_type,solution_state,initial_state,num_wildcards.
func ReadPuzzles(r io.Reader) ([]Puzzle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading puzzle CSV header: %v", xerr.InvalidInput, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, want := range []string{"id", "puzzle_type", "solution_state", "initial_state", "num_wildcards"} {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("%w: puzzle CSV missing column %q", xerr.InvalidInput, want)
		}
	}

	var out []Puzzle
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading puzzle CSV row: %v", xerr.InvalidInput, err)
		}
		ptype, err := ParsePuzzleType(row[col["puzzle_type"]])
		if err != nil {
			return nil, err
		}
		wc, err := strconv.Atoi(strings.TrimSpace(row[col["num_wildcards"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad num_wildcards %q", xerr.InvalidInput, row[col["num_wildcards"]])
		}
		out = append(out, Puzzle{
			ID:        row[col["id"]],
			Type:      ptype,
			Target:    ParseColoring(row[col["solution_state"]]),
			Initial:   ParseColoring(row[col["initial_state"]]),
			Wildcards: wc,
		})
	}
	return out, nil
}

// WritePuzzles writes puzzles back out in the same CSV shape ReadPuzzles
// accepts, used by the round-trip tests.
func WritePuzzles(w io.Writer, puzzles []Puzzle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "puzzle_type", "solution_state", "initial_state", "num_wildcards"}); err != nil {
		return err
	}
	for _, p := range puzzles {
		if err := cw.Write([]string{
			p.ID,
			p.Type.String(),
			FormatColoring(p.Target),
			FormatColoring(p.Initial),
			strconv.Itoa(p.Wildcards),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WithinWildcards reports whether the number of facelet mismatches
// between got and target is within the puzzle's wildcard tolerance.
func WithinWildcards(got, target []string, wildcards int) bool {
	if len(got) != len(target) {
		return false
	}
	mismatches := 0
	for i := range got {
		if got[i] != target[i] {
			mismatches++
		}
	}
	return mismatches <= wildcards
}
