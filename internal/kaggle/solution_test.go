package kaggle

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReadSolutionRoundTrip(t *testing.T) {
	sol := Solution{Moves: "f0.d1.-r0", Cost: 3}
	var buf bytes.Buffer
	if err := WriteSolution(&buf, sol); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}
	got, err := ReadSolution(&buf)
	if err != nil {
		t.Fatalf("ReadSolution: %v", err)
	}
	if got != sol {
		t.Errorf("got %+v, want %+v", got, sol)
	}
}

func TestReadSolutionErrors(t *testing.T) {
	if _, err := ReadSolution(strings.NewReader("")); err == nil {
		t.Error("empty solution should error")
	}
	if _, err := ReadSolution(strings.NewReader("f0\n")); err == nil {
		t.Error("solution missing cost line should error")
	}
	if _, err := ReadSolution(strings.NewReader("f0\nnotanumber\n")); err == nil {
		t.Error("solution with a non-integer cost line should error")
	}
}
