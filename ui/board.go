// Package ui holds the terminal front ends of the arena: a tview spectator for live and
// replayed games, a plain ANSI renderer and the batch self-play runner.
package ui

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tesuji-arena/analysis"
	"tesuji-arena/config"
	"tesuji-arena/engine"
	"tesuji-arena/engine/gtp"
	"tesuji-arena/game"
	"tesuji-arena/types"
)

// Overlay selects analysis layers drawn over the board.
type Overlay int

const (
	OverlayLiberties Overlay = 1 << iota
	OverlayTerritory
)

// palette slots
const (
	colBoard = iota
	colBlack
	colWhite
	colBoardAlt
	colBlackAlt
	colWhiteAlt
	colLastPlayed
	colLine
	colLibertyBlack
	colLibertyWhite
	colLibertyShared
	colTerritoryBlack
	colTerritoryWhite
)

// BoardView draws a board position, 2 characters per cell, with coordinates and overlays.
type BoardView struct {
	Box      *tview.Box
	cfg      *config.Config
	styles   []tcell.Color
	policy   engine.TerritoryPolicy
	overlays Overlay

	board     engine.Board
	last      *types.Vertex
	liberties [][]types.LibertyClass
	territory [][]types.TerritoryOwner
}

func NewBoardView(c *config.Config, policy engine.TerritoryPolicy) *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		policy: policy,
	}
	v.SetConfig(c)
	v.Box.SetDrawFunc(v.draw)
	return v
}

func (v *BoardView) SetConfig(c *config.Config) {
	col := c.Theme.Colors
	v.styles = []tcell.Color{
		colBoard:          tcell.PaletteColor(col.BoardColor),
		colBlack:          tcell.PaletteColor(col.BlackColor),
		colWhite:          tcell.PaletteColor(col.WhiteColor),
		colBoardAlt:       tcell.PaletteColor(col.BoardColorAlt),
		colBlackAlt:       tcell.PaletteColor(col.BlackColorAlt),
		colWhiteAlt:       tcell.PaletteColor(col.WhiteColorAlt),
		colLastPlayed:     tcell.PaletteColor(col.LastPlayedColorBG),
		colLine:           tcell.PaletteColor(col.LineColor),
		colLibertyBlack:   tcell.PaletteColor(col.LibertyBlack),
		colLibertyWhite:   tcell.PaletteColor(col.LibertyWhite),
		colLibertyShared:  tcell.PaletteColor(col.LibertyShared),
		colTerritoryBlack: tcell.PaletteColor(col.TerritoryBlack),
		colTerritoryWhite: tcell.PaletteColor(col.TerritoryWhite),
	}
	v.cfg = c
}

// Show displays the position of f, marking the move that produced it.
func (v *BoardView) Show(f *game.Frame) {
	v.board = f.Board
	v.last = nil
	if f.Player.Valid() && !f.Move.Pass {
		last := f.Move.Vertex
		v.last = &last
	}
	v.analyze()
}

// Board returns the displayed position, or nil before the first Show.
func (v *BoardView) Board() engine.Board {
	return v.board
}

// Toggle flips overlay o and reports whether it is now shown.
func (v *BoardView) Toggle(o Overlay) bool {
	v.overlays ^= o
	v.analyze()
	return v.overlays&o != 0
}

func (v *BoardView) Overlays() Overlay {
	return v.overlays
}

// Size returns the drawn width and height including coordinates.
func (v *BoardView) Size() (int, int) {
	if v.board == nil {
		return 22, 11
	}
	return v.board.Width()*2 + 4, v.board.Height() + 2
}

func (v *BoardView) analyze() {
	v.liberties, v.territory = nil, nil
	if v.board == nil {
		return
	}
	if v.overlays&OverlayLiberties != 0 {
		v.liberties = analysis.Liberties(v.board)
	}
	if v.overlays&OverlayTerritory != 0 {
		v.territory, _ = analysis.ScoreTerritory(v.board, v.policy)
	}
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if v.board == nil || v.board.Width() == 0 {
		return x, y, 1, 1
	}
	for by := 0; by < v.board.Height(); by++ {
		for bx := 0; bx < v.board.Width(); bx++ {
			r, conn, style := v.cell(bx, by)
			screen.SetContent(x+4+bx*2, y+by, r, nil, style)
			screen.SetContent(x+4+bx*2+1, y+by, conn, nil, style)
		}
	}
	v.drawCoordinates(screen, x, y)
	w, h := v.Size()
	return x, y, w, h
}

// cell returns the rune, right connector and style of board cell (x, y).
func (v *BoardView) cell(x, y int) (rune, rune, tcell.Style) {
	theme := v.cfg.Theme
	vertex := types.Vertex{X: x, Y: y}
	stone := v.board.Get(vertex)

	bg := colBoard
	if (x%2 + y%2) == 1 {
		bg = colBoardAlt
	}
	if theme.DrawStoneBackground && stone != types.Empty {
		bg = v.stoneColor(stone, x, y)
	}
	if v.territory != nil {
		switch v.territory[y][x] {
		case types.TerritoryBlack:
			bg = colTerritoryBlack
		case types.TerritoryWhite:
			bg = colTerritoryWhite
		}
	}
	isLast := v.last != nil && *v.last == vertex
	if isLast && theme.DrawLastPlayedBackground {
		bg = colLastPlayed
	}
	style := tcell.StyleDefault.Background(v.styles[bg])

	if stone != types.Empty {
		r := theme.Symbols.BlackStone
		if stone == types.White.Sign() {
			r = theme.Symbols.WhiteStone
		}
		fg := v.stoneColor(stone, x, y)
		if theme.DrawStoneBackground {
			fg = v.stoneColor(-stone, x, y)
		}
		return r, ' ', style.Foreground(v.styles[fg])
	}

	r := theme.Symbols.BoardSquare
	if theme.UseGridLines {
		r = getGridRune(x, y, v.board.Width(), v.board.Height(), isHoshiPoint(x, y, v.board.Width()))
	} else if isLast {
		r = theme.Symbols.LastPlayed
	}
	fg := colLine
	if v.territory != nil && v.territory[y][x] != types.Neutral && !theme.UseGridLines {
		r = theme.Symbols.Territory
	}
	if v.liberties != nil {
		switch v.liberties[y][x] {
		case types.LibertyBlack:
			r, fg = theme.Symbols.Liberty, colLibertyBlack
		case types.LibertyWhite:
			r, fg = theme.Symbols.Liberty, colLibertyWhite
		case types.LibertyShared:
			r, fg = theme.Symbols.Liberty, colLibertyShared
		}
	}

	conn := ' '
	right := types.Vertex{X: x + 1, Y: y}
	if theme.UseGridLines && v.board.Has(right) && v.board.Get(right) == types.Empty {
		conn = '─'
	}
	return r, conn, style.Foreground(v.styles[fg])
}

// stoneColor returns the palette slot for a stone of sign s on the checkered board.
func (v *BoardView) stoneColor(s types.Sign, x, y int) int {
	c := colBlack
	if s == types.White.Sign() {
		c = colWhite
	}
	if (x%2 + y%2) == 1 {
		c += colBoardAlt
	}
	return c
}

// getGridRune returns the box-drawing character for an empty intersection.
func getGridRune(x, y, width, height int, isHoshi bool) rune {
	if isHoshi {
		return '◦'
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// hoshiLines lists the lines carrying star points per supported board size.
var hoshiLines = map[int][]int{
	9:  {2, 4, 6},
	13: {3, 6, 9},
	19: {3, 9, 15},
}

// isHoshiPoint reports whether (x, y) is a star point. 19x19 has nine; 9x9 and 13x13 have
// the four corner points and the centre.
func isHoshiPoint(x, y, size int) bool {
	lines, ok := hoshiLines[size]
	if !ok || !slices.Contains(lines, x) || !slices.Contains(lines, y) {
		return false
	}
	if size == 19 {
		return true
	}
	mid := size / 2
	return (x == mid) == (y == mid)
}

func (v *BoardView) drawCoordinates(s tcell.Screen, x, y int) {
	w, h := v.board.Width(), v.board.Height()
	style := tcell.StyleDefault
	lastStyle := tcell.StyleDefault.Background(v.styles[colLastPlayed])

	for ix := 0; ix < w; ix++ {
		st := style
		if v.last != nil && v.last.X == ix {
			st = lastStyle
		}
		label := []rune(gtp.ColumnLabel(ix))[0]
		if v.cfg.Theme.FullWidthLetters {
			label += 'Ａ' - 'A'
		}
		s.SetContent(x+4+ix*2, y+h+1, label, nil, st)
		s.SetContent(x+4+ix*2+1, y+h+1, ' ', nil, st)
	}

	for iy := 0; iy < h; iy++ {
		st := style
		if v.last != nil && v.last.Y == iy {
			st = lastStyle
		}
		label := []rune(gtp.RowLabel(iy, h))
		if len(label) == 1 {
			label = append([]rune{' '}, label...)
		}
		s.SetContent(x+1, y+iy, label[0], nil, st)
		s.SetContent(x+2, y+iy, label[1], nil, st)
	}
}
