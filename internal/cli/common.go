package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/globe"
	"github.com/santa23kit/solver/internal/kaggle"
	"github.com/santa23kit/solver/internal/wreath"
	"github.com/santa23kit/solver/internal/xerr"
)

// joinDot joins formula-text parts in the §6 dot-separated move-list
// format.
func joinDot(parts []string) string { return strings.Join(parts, ".") }

// loadLines reads path, skipping blank lines and '#'-prefixed comments
// (including the optional "# Number of formulas: N" header), the
// format every family's formula files share.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.MissingResource, err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadWreathFormulas(path string) ([]*wreath.Formula, error) {
	lines, err := loadLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]*wreath.Formula, 0, len(lines))
	for _, l := range lines {
		f, err := wreath.ParseFormula(l)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

type stringer interface{ String() string }

// formulaStrings renders each formula's move-text form, for families
// whose Formula type doesn't carry a facelet-change map worth a richer
// save format (wreath, globe).
func formulaStrings[T stringer](fs []T) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

// saveFormulaTexts writes texts to path in the §6 formula-file format.
func saveFormulaTexts(path string, texts []string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Number of formulas: %d\n", len(texts))
	for _, t := range texts {
		sb.WriteString(t)
		sb.WriteByte('\n')
	}
	return writeFile(path, sb.String())
}

func loadGlobeFormulas(path string) ([]*globe.Formula, error) {
	lines, err := loadLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]*globe.Formula, 0, len(lines))
	for _, l := range lines {
		f, err := globe.ParseFormula(l)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// writeFile writes content to path, wrapping any OS error as a
// MissingResource error naming the file.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: writing %q: %v", xerr.MissingResource, path, err)
	}
	return nil
}

// parsePalette maps a CLI --palette flag value to cube.Palette.
func parsePalette(s string) (cube.Palette, error) {
	switch s {
	case "normal":
		return cube.PaletteNormal, nil
	case "rainbow":
		return cube.PaletteRainbow, nil
	default:
		return 0, fmt.Errorf("%w: unknown palette %q (want normal or rainbow)", xerr.InvalidInput, s)
	}
}

// newSolvedCube builds a solved order-N cube in the given palette.
func newSolvedCube(order int, palette cube.Palette) *cube.Cube {
	return cube.NewCube(order, palette)
}

// newSolvedWreath builds a solved size-s wreath.
func newSolvedWreath(size int) *wreath.Wreath { return wreath.New(size) }

// newSolvedGlobe builds a solved globe from band count and width; the
// color count defaults to one color per facelet (2*width) unless
// colors > 0 overrides it.
func newSolvedGlobe(bands, width, colors int) *globe.Globe {
	if colors <= 0 {
		colors = 2 * width
	}
	return globe.New(2*bands, width, colors)
}

// cubeOrderFromType returns the order of a cube kaggle.PuzzleType (its
// first dimension).
func cubeOrderFromType(t kaggle.PuzzleType) (int, error) {
	if t.Family != kaggle.FamilyCube || len(t.Dims) == 0 {
		return 0, fmt.Errorf("%w: not a cube puzzle type: %s", xerr.InvalidInput, t)
	}
	return t.Dims[0], nil
}

func wreathSizeFromType(t kaggle.PuzzleType) (int, error) {
	if t.Family != kaggle.FamilyWreath || len(t.Dims) == 0 {
		return 0, fmt.Errorf("%w: not a wreath puzzle type: %s", xerr.InvalidInput, t)
	}
	return t.Dims[0], nil
}

func globeDimsFromType(t kaggle.PuzzleType) (bands, width int, err error) {
	if t.Family != kaggle.FamilyGlobe || len(t.Dims) < 2 {
		return 0, 0, fmt.Errorf("%w: not a globe puzzle type: %s", xerr.InvalidInput, t)
	}
	return t.Dims[0], t.Dims[1], nil
}
