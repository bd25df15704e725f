package cube

import (
	"path/filepath"
	"testing"
)

func TestFormulaInverseUndoes(t *testing.T) {
	f, err := ParseFormula("f1.d0.-r0.-f1")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}
	solved := NewCube(5, PaletteRainbow)
	c := solved.Clone()
	c.RotateMoves(f.Moves)
	c.RotateMoves(f.Inverse().Moves)
	if !c.Equal(solved) {
		t.Fatal("formula followed by its inverse should return to the starting state")
	}
}

func TestFormulaCost(t *testing.T) {
	f, err := ParseFormula("f1.d0.-r0.-f1")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}
	if f.Cost() != 4 {
		t.Errorf("Cost() = %d, want 4", f.Cost())
	}
}

func TestFormulaStringRoundTrip(t *testing.T) {
	text := "f1.d0.-r0.-f1"
	f, err := ParseFormula(text)
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}
	if f.String() != text {
		t.Errorf("String() = %q, want %q", f.String(), text)
	}
}

func TestSaveLoadFormulasRoundTrip(t *testing.T) {
	formulas := []*Formula{
		mustFormula(t, "f0"),
		mustFormula(t, "-d1.r0"),
		mustFormula(t, "f1.d0.-r0.-f1"),
	}
	path := filepath.Join(t.TempDir(), "formulas.txt")
	if err := SaveFormulasToFile(path, formulas); err != nil {
		t.Fatalf("SaveFormulasToFile: %v", err)
	}
	loaded, err := LoadFormulasFromFile(path)
	if err != nil {
		t.Fatalf("LoadFormulasFromFile: %v", err)
	}
	if len(loaded) != len(formulas) {
		t.Fatalf("loaded %d formulas, want %d", len(loaded), len(formulas))
	}
	for i, f := range formulas {
		if loaded[i].String() != f.String() {
			t.Errorf("formula %d: loaded %q, want %q", i, loaded[i].String(), f.String())
		}
	}
}

func mustFormula(t *testing.T, s string) *Formula {
	t.Helper()
	f, err := ParseFormula(s)
	if err != nil {
		t.Fatalf("ParseFormula(%q): %v", s, err)
	}
	return f
}
