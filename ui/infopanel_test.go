package ui

import (
	"strings"
	"testing"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/game"
	"tesuji-arena/types"
)

func TestInfoPanelRender(t *testing.T) {
	sess := game.New(rules.New(5, 5))
	view := game.NewTimeline(sess.Board())

	b1, err := sess.Board().MakeMove(types.Black, types.PlayAt(types.Vertex{X: 0, Y: 0}), types.StrictMove)
	if err != nil {
		t.Fatal(err)
	}
	view.Append(types.Black, types.PlayAt(types.Vertex{X: 0, Y: 0}), b1)
	b2, err := b1.MakeMove(types.White, types.PlayAt(types.Vertex{X: 4, Y: 4}), types.StrictMove)
	if err != nil {
		t.Fatal(err)
	}
	view.Append(types.White, types.PlayAt(types.Vertex{X: 4, Y: 4}), b2)

	p := NewInfoPanel(engine.CountAlways)
	p.SetTitle("random")
	snap := sess.Snapshot()
	text := p.render(snap, view)
	for _, want := range []string{snap.ID.String()[:8], "random", "Turn:[-:-:-] 2", "A5", "E1", "● Black"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel missing %q:\n%s", want, text)
		}
	}

	view.Back()
	text = p.render(snap, view)
	if !strings.Contains(text, "1 [yellow]/ 2 review") {
		t.Errorf("reviewing panel should show the cursor turn:\n%s", text)
	}
	if strings.Contains(text, "E1") {
		t.Errorf("moves after the cursor should be hidden:\n%s", text)
	}
}

func TestShapeCounts(t *testing.T) {
	b := board(t, [][]types.Sign{
		{B, B, E, W},
		{E, E, E, E},
		{W, E, E, B},
		{E, E, B, B},
		{W, E, E, B},
	})
	tests := []struct {
		p                    types.Player
		linked, lone, strong int
	}{
		{types.Black, 6, 0, 1},
		{types.White, 0, 3, 0},
	}
	linked, lone, strong := shapeCounts(b)
	for _, tt := range tests {
		if linked[tt.p] != tt.linked || lone[tt.p] != tt.lone || strong[tt.p] != tt.strong {
			t.Errorf("%s linked/lone/strong = %d/%d/%d, want %d/%d/%d", tt.p,
				linked[tt.p], lone[tt.p], strong[tt.p], tt.linked, tt.lone, tt.strong)
		}
	}
}
