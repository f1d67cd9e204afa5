package types

import (
	"errors"
	"testing"
)

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White {
		t.Errorf("Black.Opponent() = %v, want White", Black.Opponent())
	}
	if White.Opponent() != Black {
		t.Errorf("White.Opponent() = %v, want Black", White.Opponent())
	}
	if Black.Sign() == White.Sign() || Black.Sign() == Empty {
		t.Error("player signs must be distinct and non-empty")
	}
}

func TestMoveAnalysisLegal(t *testing.T) {
	tests := []struct {
		a    MoveAnalysis
		want bool
	}{
		{MoveAnalysis{}, true},
		{MoveAnalysis{Capturing: true}, true},
		{MoveAnalysis{Pass: true}, false},
		{MoveAnalysis{Overwrite: true}, false},
		{MoveAnalysis{Suicide: true}, false},
		{MoveAnalysis{Ko: true, Capturing: true}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Legal(); got != tt.want {
			t.Errorf("%+v.Legal() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestIllegalMoveErrorUnwrap(t *testing.T) {
	var err error = &IllegalMoveError{Player: Black, Vertex: Vertex{1, 2}, Reason: ErrKo}
	if !errors.Is(err, ErrKo) {
		t.Error("IllegalMoveError should unwrap to its reason")
	}
	var ime *IllegalMoveError
	if !errors.As(err, &ime) || ime.Vertex != (Vertex{1, 2}) {
		t.Error("errors.As should recover the IllegalMoveError")
	}
}

func TestMoveString(t *testing.T) {
	if PassMove().String() != "pass" {
		t.Errorf("PassMove().String() = %q", PassMove().String())
	}
	if got := PlayAt(Vertex{3, 4}).String(); got != "(3,4)" {
		t.Errorf("PlayAt.String() = %q, want (3,4)", got)
	}
}
