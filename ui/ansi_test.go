package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

func plainRenderer(buf *bytes.Buffer, policy engine.TerritoryPolicy) *Renderer {
	return NewRenderer(buf, policy, termenv.WithProfile(termenv.Ascii))
}

func TestRendererBoard(t *testing.T) {
	tests := []struct {
		name   string
		signs  [][]types.Sign
		policy engine.TerritoryPolicy
		want   []string
	}{
		{
			name:   "territory on both sides",
			signs:  [][]types.Sign{{E, B, W, E}},
			policy: engine.RequireBothPlayers,
			want:   []string{"   A B C D ", " 1 ▓▓████▓▓"},
		},
		{
			name:   "shared liberties",
			signs:  [][]types.Sign{{B, E, W}, {B, E, W}, {B, E, W}},
			policy: engine.CountAlways,
			want:   []string{" 3 ██░░██", " 1 ██░░██"},
		},
		{
			name:   "one player is liberties only",
			signs:  [][]types.Sign{{B, E, E}},
			policy: engine.RequireBothPlayers,
			want:   []string{" 1 ██░░  "},
		},
		{
			name:   "one player counts territory when always",
			signs:  [][]types.Sign{{B, E, E}},
			policy: engine.CountAlways,
			want:   []string{" 1 ██▓▓▓▓"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := plainRenderer(&buf, tt.policy)
			if err := r.Render(board(t, tt.signs)); err != nil {
				t.Fatalf("Render: %v", err)
			}
			lines := strings.Split(buf.String(), "\n")
			for _, want := range tt.want {
				found := false
				for _, l := range lines {
					if l == want {
						found = true
					}
				}
				if !found {
					t.Errorf("missing line %q in\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRendererSummary(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf, engine.CountAlways)
	if err := r.Summary(board(t, [][]types.Sign{{E, B, W, E}})); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	for _, want := range []string{
		"black: 0 captures, 1 stones, 1 territory",
		"white: 0 captures, 1 stones, 1 territory",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, buf.String())
		}
	}
}
