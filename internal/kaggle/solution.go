package kaggle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Solution is one puzzle's solving move sequence and its cost, the
// per-problem output format of spec.md §6: a dot-separated move list
// on the first line, the integer cost on the second.
type Solution struct {
	Moves string
	Cost  int
}

// WriteSolution writes sol in the two-line competition output format.
func WriteSolution(w io.Writer, sol Solution) error {
	_, err := fmt.Fprintf(w, "%s\n%d\n", sol.Moves, sol.Cost)
	return err
}

// ReadSolution parses the two-line competition output format.
func ReadSolution(r io.Reader) (Solution, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return Solution{}, fmt.Errorf("%w: empty solution file", xerr.InvalidInput)
	}
	moves := strings.TrimSpace(sc.Text())
	if !sc.Scan() {
		return Solution{}, fmt.Errorf("%w: solution file missing cost line", xerr.InvalidInput)
	}
	cost, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return Solution{}, fmt.Errorf("%w: bad cost line %q", xerr.InvalidInput, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Solution{}, err
	}
	return Solution{Moves: moves, Cost: cost}, nil
}
