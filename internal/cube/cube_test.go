package cube

import "testing"

func TestNewCubeSolved(t *testing.T) {
	tests := []struct {
		name    string
		order   int
		palette Palette
	}{
		{"2x2x2 normal", 2, PaletteNormal},
		{"3x3x3 normal", 3, PaletteNormal},
		{"5x5x5 rainbow", 5, PaletteRainbow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube(tt.order, tt.palette)
			if !c.Equal(NewCube(tt.order, tt.palette)) {
				t.Errorf("two freshly solved cubes of order %d should be equal", tt.order)
			}
		})
	}
}

func TestRotateInverseRoundTrip(t *testing.T) {
	for _, order := range []int{2, 3, 4, 5} {
		for _, axis := range []Axis{AxisF, AxisD, AxisR} {
			for d := 0; d < order; d++ {
				m := Move{Axis: axis, CW: true, Depth: d}
				solved := NewCube(order, PaletteRainbow)
				c := solved.Clone()
				c.Rotate(m)
				c.Rotate(m.Inverse())
				if !c.Equal(solved) {
					t.Errorf("order %d: move/inverse round-trip failed for %s", order, m)
				}
			}
		}
	}
}

func TestFaceletChangeMapAgreesWithMoveReplay(t *testing.T) {
	order := 5
	f, err := ParseFormula("f1.d0.-r0.-f1")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}
	f.Precompute(order)

	solved := NewCube(order, PaletteRainbow)
	viaMoves := solved.Clone()
	viaMoves.RotateMoves(f.Moves)
	viaMap := solved.Clone()
	viaMap.RotateFormula(f)

	if !viaMoves.Equal(viaMap) {
		t.Fatal("facelet-change map disagrees with literal move replay")
	}
}

func TestFaceRotationClassInvariant(t *testing.T) {
	order := 4
	solved := NewCube(order, PaletteNormal)
	for d := 0; d < order; d++ {
		m := Move{Axis: AxisF, CW: true, Depth: d}
		c := solved.Clone()
		c.Rotate(m)
		got := c.ClassesMatch(solved)
		want := m.IsFaceRotation(order)
		if got != want {
			t.Errorf("depth %d: ClassesMatch=%v, want %v (IsFaceRotation)", d, got, want)
		}
	}
}

func TestKaggleColoringRoundTrip(t *testing.T) {
	order := 3
	c := NewCube(order, PaletteNormal)
	colors := c.WriteKaggleColoring()

	other := NewCube(order, PaletteNormal)
	other.Rotate(Move{Axis: AxisF, CW: true, Depth: 0})
	if err := other.ReadKaggleColoring(colors); err != nil {
		t.Fatalf("ReadKaggleColoring: %v", err)
	}
	if !other.Equal(c) {
		t.Fatal("ReadKaggleColoring(WriteKaggleColoring(solved)) should reproduce the solved cube")
	}
}

func TestReadKaggleColoringWrongLength(t *testing.T) {
	c := NewCube(3, PaletteNormal)
	if err := c.ReadKaggleColoring([]Color{0, 1, 2}); err == nil {
		t.Fatal("expected an error for a too-short coloring")
	}
}
