package cube

import "testing"

func TestParseMoveRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"f0", Move{Axis: AxisF, CW: true, Depth: 0}},
		{"-f0", Move{Axis: AxisF, CW: false, Depth: 0}},
		{"d3", Move{Axis: AxisD, CW: true, Depth: 3}},
		{"-r11", Move{Axis: AxisR, CW: false, Depth: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q, want %q", got.String(), tt.text)
			}
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, s := range []string{"", "-", "x0", "f", "f-1"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should have errored", s)
		}
	}
}

func TestMoveInverseIsInvolution(t *testing.T) {
	m := Move{Axis: AxisR, CW: true, Depth: 2}
	if m.Inverse().Inverse() != m {
		t.Errorf("Inverse should be an involution: got %+v", m.Inverse().Inverse())
	}
	if m.Inverse() == m {
		t.Errorf("a quarter-turn's inverse should differ from itself")
	}
}

func TestIsFaceRotation(t *testing.T) {
	order := 5
	tests := []struct {
		depth int
		want  bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, false},
		{4, true},
	}
	for _, tt := range tests {
		m := Move{Axis: AxisF, Depth: tt.depth}
		if got := m.IsFaceRotation(order); got != tt.want {
			t.Errorf("depth %d: IsFaceRotation = %v, want %v", tt.depth, got, tt.want)
		}
	}
}
