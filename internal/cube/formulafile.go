package cube

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// SaveFormulas writes formulas to w in the reference searcher's text
// format: an optional "# Number of formulas: N" header, then one
// dot-joined formula per line.
func SaveFormulas(w io.Writer, formulas []*Formula) error {
	if _, err := fmt.Fprintf(w, "# Number of formulas: %d\n", len(formulas)); err != nil {
		return err
	}
	for _, f := range formulas {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	return nil
}

// SaveFormulasToFile creates (or truncates) path and writes formulas to it.
func SaveFormulasToFile(path string, formulas []*Formula) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", xerr.MissingResource, err)
	}
	defer file.Close()
	return SaveFormulas(file, formulas)
}

// LoadFormulas reads formula text from r: blank lines and lines
// beginning with '#' (including the optional count header) are
// skipped, every other non-empty line is parsed as a formula.
func LoadFormulas(r io.Reader) ([]*Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var formulas []*Formula
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f, err := ParseFormula(line)
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return formulas, nil
}

// LoadFormulasFromFile opens path and parses it with LoadFormulas.
func LoadFormulasFromFile(path string) ([]*Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.MissingResource, err)
	}
	defer file.Close()
	return LoadFormulas(file)
}
