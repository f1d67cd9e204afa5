package gtp

import (
	"testing"

	"tesuji-arena/types"
)

func TestVertex(t *testing.T) {
	tests := []struct {
		x, y, size int
		want       string
	}{
		{0, 18, 19, "A1"},
		{3, 15, 19, "D4"},
		{15, 3, 19, "Q16"},
		{8, 0, 19, "J19"},
		{18, 0, 19, "T19"},
		{4, 4, 9, "E5"},
	}
	for _, tt := range tests {
		if got := Vertex(types.Vertex{X: tt.x, Y: tt.y}, tt.size); got != tt.want {
			t.Errorf("Vertex(%d, %d, %d) = %q, want %q", tt.x, tt.y, tt.size, got, tt.want)
		}
	}
	if got := Move(types.PassMove(), 19); got != "pass" {
		t.Errorf("Move(pass) = %q, want pass", got)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		size int
		want types.Move
	}{
		{"A1", 19, types.PlayAt(types.Vertex{X: 0, Y: 18})},
		{"d4", 19, types.PlayAt(types.Vertex{X: 3, Y: 15})},
		{"J19", 19, types.PlayAt(types.Vertex{X: 8, Y: 0})},
		{" pass ", 19, types.PassMove()},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in, tt.size)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "Z", "I5", "A0", "T20", "K10"} {
		if _, err := ParseMove(bad, 9); err == nil {
			t.Errorf("ParseMove(%q, 9) should fail", bad)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for y := 0; y < 13; y++ {
		for x := 0; x < 13; x++ {
			m := types.PlayAt(types.Vertex{X: x, Y: y})
			got, err := ParseMove(Move(m, 13), 13)
			if err != nil || got != m {
				t.Fatalf("round trip of %v = %v, %v", m, got, err)
			}
		}
	}
}
