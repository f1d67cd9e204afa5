package ui

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/tview"

	"tesuji-arena/analysis"
	"tesuji-arena/engine"
	"tesuji-arena/engine/gtp"
	"tesuji-arena/game"
	"tesuji-arena/types"
)

const panelRule = "[dimgray]──────────────────────[-:-:-]\n"

// InfoPanel displays the game and the analysis of the displayed position next to the board.
type InfoPanel struct {
	box    *tview.TextView
	policy engine.TerritoryPolicy
	title  string
}

func NewInfoPanel(policy engine.TerritoryPolicy) *InfoPanel {
	panel := &InfoPanel{
		box:    tview.NewTextView(),
		policy: policy,
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// SetTitle sets the line naming who plays, such as the strategy or the SGF players.
func (p *InfoPanel) SetTitle(title string) {
	p.title = title
}

// Update shows snap and the position under the cursor of view.
func (p *InfoPanel) Update(snap game.Snapshot, view *game.Timeline) {
	p.box.SetText(p.render(snap, view))
}

func (p *InfoPanel) render(snap game.Snapshot, view *game.Timeline) string {
	if view == nil || view.Current == nil {
		return ""
	}
	var b strings.Builder
	cur := view.Current
	board := cur.Board

	b.WriteString("[white::b]Arena[-:-:-]\n")
	b.WriteString(panelRule)
	if snap.ID != uuid.Nil {
		fmt.Fprintf(&b, "[white]Game:[-:-:-] %s\n", snap.ID.String()[:8])
	}
	if p.title != "" {
		fmt.Fprintf(&b, "[dimgray]%s[-]\n", tview.Escape(p.title))
	}
	if view.Live() {
		fmt.Fprintf(&b, "[white]Turn:[-:-:-] %d\n", cur.Turn)
	} else {
		fmt.Fprintf(&b, "[white]Turn:[-:-:-] %d [yellow]/ %d review[-]\n", cur.Turn, view.Tail.Turn)
	}
	if snap.State == game.Terminated {
		b.WriteString("[white]State:[-:-:-] finished\n")
	} else {
		fmt.Fprintf(&b, "[white]To move:[-:-:-] %s\n", stoneLabel(snap.ToMove))
	}

	_, counts := analysis.ScoreTerritory(board, p.policy)
	b.WriteString("\n[white::b]Score[-:-:-]\n")
	b.WriteString(panelRule)
	b.WriteString("           B     W\n")
	fmt.Fprintf(&b, "Stones  %5d %5d\n", counts.Stones[types.Black], counts.Stones[types.White])
	fmt.Fprintf(&b, "Terr.   %5d %5d\n", counts.Territory[types.Black], counts.Territory[types.White])
	fmt.Fprintf(&b, "Capt.   %5d %5d\n", board.Captures(types.Black), board.Captures(types.White))
	linked, lone, strong := shapeCounts(board)
	fmt.Fprintf(&b, "Linked  %5d %5d\n", linked[types.Black], linked[types.White])
	fmt.Fprintf(&b, "Strong  %5d %5d\n", strong[types.Black], strong[types.White])
	fmt.Fprintf(&b, "Lone    %5d %5d\n", lone[types.Black], lone[types.White])
	fmt.Fprintf(&b, "[dimgray]neutral %d[-]\n", counts.Neutral)

	const maxVisible = 12
	if frames := view.Last(maxVisible); len(frames) > 0 {
		b.WriteString("\n[white::b]Moves[-:-:-]\n")
		b.WriteString(panelRule)
		for i, f := range frames {
			marker := " "
			if i == len(frames)-1 {
				marker = "[white]>[-]"
			}
			colour := "[white]B[-]"
			if f.Player == types.White {
				colour = "[dimgray]W[-]"
			}
			fmt.Fprintf(&b, "%s[dimgray]%3d.[-] %s %s\n", marker, f.Turn, colour, gtp.Move(f.Move, board.Height()))
		}
		if earlier := cur.Turn - len(frames); earlier > 0 {
			fmt.Fprintf(&b, "[dimgray]  ··· %d earlier[-]\n", earlier)
		}
	}
	return b.String()
}

// shapeCounts counts, per colour, stones with at least one friendly neighbour, lone stones,
// and strong stones with three or four friendly neighbours.
func shapeCounts(board engine.Board) (linked, lone, strong map[types.Player]int) {
	linked = map[types.Player]int{}
	lone = map[types.Player]int{}
	strong = map[types.Player]int{}
	for _, s := range analysis.ShapeMap(board) {
		if s.Shape == types.Isolated {
			lone[s.Owner]++
			continue
		}
		linked[s.Owner]++
		if analysis.FriendlyNeighbors(board, s.Vertex) >= 3 {
			strong[s.Owner]++
		}
	}
	return linked, lone, strong
}

func stoneLabel(p types.Player) string {
	if p == types.White {
		return "○ White"
	}
	return "● Black"
}

// CreateGameLayout lays out the board with the info panel on its right and the hint below.
func CreateGameLayout(board *BoardView, panel *InfoPanel, hint *tview.TextView) *tview.Flex {
	frame := tview.NewFlex()
	RebuildNormalLayout(frame, board, panel, hint)
	return frame
}

// RebuildNormalLayout restores the board, info panel and hint layout in frame.
func RebuildNormalLayout(frame *tview.Flex, board *BoardView, panel *InfoPanel, hint *tview.TextView) {
	frame.Clear()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	frame.SetDirection(tview.FlexRow)
	frame.AddItem(boardRow, 0, 1, true)
	frame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout shows only the board, centred.
func BuildFocusLayout(frame *tview.Flex, board *BoardView) {
	frame.Clear()
	w, h := board.Size()

	frame.SetDirection(tview.FlexRow)
	frame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, w, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	frame.AddItem(centerRow, h, 0, true)
	frame.AddItem(nil, 0, 1, false)
}

// CreateCenteredForm centres form horizontally with a maximum width.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
