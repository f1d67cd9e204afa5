package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"tesuji-arena/analysis"
	"tesuji-arena/engine"
	"tesuji-arena/engine/gtp"
	"tesuji-arena/types"
)

// ANSI colours of the plain renderer.
const (
	ansiBlack  = "1" // red
	ansiWhite  = "4" // blue
	ansiShared = "5" // magenta
)

// Cell glyphs of the plain renderer, two columns wide.
const (
	glyphStone     = "██"
	glyphTerritory = "▓▓"
	glyphLiberty   = "░░"
	glyphEmpty     = "  "
)

// Renderer prints boards as coloured text: stones, then territory, then liberties.
type Renderer struct {
	out    *termenv.Output
	policy engine.TerritoryPolicy
}

// NewRenderer writes to w. Without options the colour profile is detected from w.
func NewRenderer(w io.Writer, policy engine.TerritoryPolicy, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		out:    termenv.NewOutput(w, opts...),
		policy: policy,
	}
}

// Render writes b followed by a blank line.
func (r *Renderer) Render(b engine.Board) error {
	_, err := io.WriteString(r.out, r.Board(b)+"\n")
	return err
}

// Board returns the rendering of b.
func (r *Renderer) Board(b engine.Board) string {
	liberties := analysis.Liberties(b)
	territory, _ := analysis.ScoreTerritory(b, r.policy)

	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < b.Width(); x++ {
		sb.WriteString(gtp.ColumnLabel(x) + " ")
	}
	sb.WriteString("\n")
	for y := 0; y < b.Height(); y++ {
		fmt.Fprintf(&sb, "%2s ", gtp.RowLabel(y, b.Height()))
		for x := 0; x < b.Width(); x++ {
			stone := b.Get(types.Vertex{X: x, Y: y})
			sb.WriteString(r.cell(stone, territory[y][x], liberties[y][x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) cell(stone types.Sign, owner types.TerritoryOwner, liberty types.LibertyClass) string {
	var glyph, color string
	switch {
	case stone != types.Empty:
		glyph, color = glyphStone, sideColor(stone.Player())
	case owner == types.TerritoryBlack:
		glyph, color = glyphTerritory, ansiBlack
	case owner == types.TerritoryWhite:
		glyph, color = glyphTerritory, ansiWhite
	case liberty == types.LibertyBlack:
		glyph, color = glyphLiberty, ansiBlack
	case liberty == types.LibertyWhite:
		glyph, color = glyphLiberty, ansiWhite
	case liberty == types.LibertyShared:
		glyph, color = glyphLiberty, ansiShared
	default:
		return glyphEmpty
	}
	return r.out.String(glyph).Foreground(r.out.Color(color)).String()
}

// Summary writes the capture and territory counts of b.
func (r *Renderer) Summary(b engine.Board) error {
	_, counts := analysis.ScoreTerritory(b, r.policy)
	var sb strings.Builder
	sb.WriteString("captures:\n")
	for _, p := range []types.Player{types.Black, types.White} {
		name := r.out.String(strings.ToLower(p.String())).Foreground(r.out.Color(sideColor(p))).String()
		fmt.Fprintf(&sb, "  %s: %d captures, %d stones, %d territory\n",
			name, b.Captures(p), counts.Stones[p], counts.Territory[p])
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

func sideColor(p types.Player) string {
	if p == types.White {
		return ansiWhite
	}
	return ansiBlack
}
