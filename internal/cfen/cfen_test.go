package cfen

import (
	"testing"

	"github.com/santa23kit/solver/internal/cube"
)

func TestFromCubeToCubeRoundTrip(t *testing.T) {
	for _, order := range []int{2, 3, 5} {
		c := cube.NewCube(order, cube.PaletteNormal)
		c.Rotate(cube.Move{Axis: cube.AxisF, CW: true, Depth: 0})
		got := FromCube(c).ToCube()
		if !got.Equal(c) {
			t.Errorf("order %d: ToCube(FromCube(c)) should reproduce c", order)
		}
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	c := cube.NewCube(4, cube.PaletteRainbow)
	c.Rotate(cube.Move{Axis: cube.AxisR, CW: false, Depth: 2})
	text := FromCube(c).String()

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.String() != text {
		t.Errorf("re-rendered %q, want %q", parsed.String(), text)
	}
	if !parsed.ToCube().Equal(c) {
		t.Error("parsed state should reproduce the original cube")
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"3|0,0,0,0,0,0,0,0,0",
		"3:6/0,0",
		"3:6|0,0/1,1",
	} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should have errored", s)
		}
	}
}

func TestMatchesWildcard(t *testing.T) {
	c := cube.NewCube(3, cube.PaletteNormal)
	st := FromCube(c)
	st.Faces[0][0] = Wildcard
	other := c.Clone()
	other.Set(0, 0, 0, other.Get(0, 0, 0)+1)
	if !st.Matches(other) {
		t.Error("a wildcard facelet should match any color")
	}
	st2 := FromCube(c)
	if st2.Matches(other) {
		t.Error("a non-wildcard mismatch should not match")
	}
}
