// Package rules implements the Go rules engine behind engine.Board: immutable snapshots,
// captures, simple ko, and suicide and overwrite checks.
package rules

import (
	"fmt"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// directions lists the orthogonal neighbour offsets: west, east, north, south.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// koPoint forbids player from playing vertex on its next move.
type koPoint struct {
	player types.Player
	vertex types.Vertex
}

// Board is an immutable Go position. The zero value is not usable; use New or FromSigns.
type Board struct {
	width    int
	height   int
	signs    [][]types.Sign // signs[y][x]
	captures [2]int         // stones captured by black, by white
	ko       *koPoint
}

var _ engine.Board = (*Board)(nil)

// New creates an empty width x height board.
func New(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		signs:  makeSigns(width, height),
	}
}

// FromSigns creates a board from a grid indexed as signs[y][x].
// The grid is copied; rows must all have the same length.
func FromSigns(signs [][]types.Sign) (*Board, error) {
	height := len(signs)
	if height == 0 {
		return nil, fmt.Errorf("empty sign map")
	}
	width := len(signs[0])
	b := New(width, height)
	for y, row := range signs {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), width)
		}
		for x, s := range row {
			if s != types.Empty && !s.Player().Valid() {
				return nil, fmt.Errorf("invalid sign %d at (%d,%d)", s, x, y)
			}
			b.signs[y][x] = s
		}
	}
	return b, nil
}

func makeSigns(width, height int) [][]types.Sign {
	signs := make([][]types.Sign, height)
	for i := range signs {
		signs[i] = make([]types.Sign, width)
	}
	return signs
}

// Width returns the board width.
func (b *Board) Width() int { return b.width }

// Height returns the board height.
func (b *Board) Height() int { return b.height }

// Signs returns a copy of the grid, indexed as [y][x].
func (b *Board) Signs() [][]types.Sign {
	out := makeSigns(b.width, b.height)
	for y := range b.signs {
		copy(out[y], b.signs[y])
	}
	return out
}

// Has reports whether v lies on the board.
func (b *Board) Has(v types.Vertex) bool {
	return v.X >= 0 && v.X < b.width && v.Y >= 0 && v.Y < b.height
}

// Get returns the owner of v; off-board vertices are empty.
func (b *Board) Get(v types.Vertex) types.Sign {
	if !b.Has(v) {
		return types.Empty
	}
	return b.signs[v.Y][v.X]
}

// Neighbors returns the on-board orthogonal neighbours of v.
func (b *Board) Neighbors(v types.Vertex) []types.Vertex {
	if !b.Has(v) {
		return nil
	}
	out := make([]types.Vertex, 0, 4)
	for _, d := range directions {
		n := types.Vertex{X: v.X + d[0], Y: v.Y + d[1]}
		if b.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Chain returns the maximal connected set of vertices sharing v's owner, v first.
func (b *Board) Chain(v types.Vertex) []types.Vertex {
	if !b.Has(v) {
		return nil
	}
	return b.chain(b.signs, v)
}

// chain flood fills from v over cells of the same sign in grid.
func (b *Board) chain(grid [][]types.Sign, v types.Vertex) []types.Vertex {
	sign := grid[v.Y][v.X]
	visited := make([]bool, b.width*b.height)
	visited[v.Y*b.width+v.X] = true
	result := []types.Vertex{v}
	for i := 0; i < len(result); i++ {
		cur := result[i]
		for _, d := range directions {
			n := types.Vertex{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !b.Has(n) || visited[n.Y*b.width+n.X] || grid[n.Y][n.X] != sign {
				continue
			}
			visited[n.Y*b.width+n.X] = true
			result = append(result, n)
		}
	}
	return result
}

// liberties returns the distinct empty vertices adjacent to the chain containing v.
func (b *Board) liberties(grid [][]types.Sign, v types.Vertex) []types.Vertex {
	seen := make(map[types.Vertex]bool)
	var libs []types.Vertex
	for _, c := range b.chain(grid, v) {
		for _, d := range directions {
			n := types.Vertex{X: c.X + d[0], Y: c.Y + d[1]}
			if b.Has(n) && grid[n.Y][n.X] == types.Empty && !seen[n] {
				seen[n] = true
				libs = append(libs, n)
			}
		}
	}
	return libs
}

// hasLiberties checks whether the chain containing v touches an empty cell.
func (b *Board) hasLiberties(grid [][]types.Sign, v types.Vertex) bool {
	for _, c := range b.chain(grid, v) {
		for _, d := range directions {
			n := types.Vertex{X: c.X + d[0], Y: c.Y + d[1]}
			if b.Has(n) && grid[n.Y][n.X] == types.Empty {
				return true
			}
		}
	}
	return false
}

// Captures returns the number of stones captured by p.
func (b *Board) Captures(p types.Player) int {
	if p == types.Black {
		return b.captures[0]
	}
	return b.captures[1]
}

func (b *Board) addCaptures(p types.Player, n int) {
	if p == types.Black {
		b.captures[0] += n
	} else {
		b.captures[1] += n
	}
}

// AnalyzeMove reports what placing a stone of p at v would do without applying it.
func (b *Board) AnalyzeMove(p types.Player, v types.Vertex) types.MoveAnalysis {
	var a types.MoveAnalysis
	if !p.Valid() || !b.Has(v) {
		a.Pass = true
		return a
	}
	if b.Get(v) != types.Empty {
		a.Overwrite = true
		return a
	}
	a.Ko = b.ko != nil && b.ko.player == p && b.ko.vertex == v

	grid := b.Signs()
	grid[v.Y][v.X] = p.Sign()
	for _, n := range b.Neighbors(v) {
		if grid[n.Y][n.X] == p.Opponent().Sign() && !b.hasLiberties(grid, n) {
			a.Capturing = true
			break
		}
	}
	a.Suicide = !a.Capturing && !b.hasLiberties(grid, v)
	return a
}

// MakeMove applies m for p and returns the new snapshot. b is left untouched.
func (b *Board) MakeMove(p types.Player, m types.Move, opts types.MoveOptions) (engine.Board, error) {
	next := b.clone()
	next.ko = nil
	if m.Pass {
		return next, nil
	}

	v := m.Vertex
	if !p.Valid() || !b.Has(v) {
		return nil, &types.IllegalMoveError{Player: p, Vertex: v, Reason: types.ErrOutOfBounds}
	}
	if opts.PreventOverwrite && b.Get(v) != types.Empty {
		return nil, &types.IllegalMoveError{Player: p, Vertex: v, Reason: types.ErrOverwrite}
	}
	if opts.PreventKo && b.ko != nil && b.ko.player == p && b.ko.vertex == v {
		return nil, &types.IllegalMoveError{Player: p, Vertex: v, Reason: types.ErrKo}
	}

	next.signs[v.Y][v.X] = p.Sign()

	var dead []types.Vertex
	for _, n := range next.Neighbors(v) {
		if next.signs[n.Y][n.X] != p.Opponent().Sign() || next.hasLiberties(next.signs, n) {
			continue
		}
		for _, c := range next.chain(next.signs, n) {
			next.signs[c.Y][c.X] = types.Empty
			dead = append(dead, c)
		}
	}
	next.addCaptures(p, len(dead))

	libs := next.liberties(next.signs, v)
	if len(dead) == 1 && len(libs) == 1 && libs[0] == dead[0] && !next.hasFriendlyNeighbor(v, p) {
		next.ko = &koPoint{player: p.Opponent(), vertex: dead[0]}
	}

	if len(dead) == 0 && len(libs) == 0 {
		if opts.PreventSuicide {
			return nil, &types.IllegalMoveError{Player: p, Vertex: v, Reason: types.ErrSuicide}
		}
		own := next.chain(next.signs, v)
		for _, c := range own {
			next.signs[c.Y][c.X] = types.Empty
		}
		next.addCaptures(p.Opponent(), len(own))
	}
	return next, nil
}

func (b *Board) hasFriendlyNeighbor(v types.Vertex, p types.Player) bool {
	for _, n := range b.Neighbors(v) {
		if b.Get(n) == p.Sign() {
			return true
		}
	}
	return false
}

// IsValid reports whether every chain of stones has at least one liberty.
func (b *Board) IsValid() bool {
	visited := make([]bool, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if visited[y*b.width+x] || b.signs[y][x] == types.Empty {
				continue
			}
			v := types.Vertex{X: x, Y: y}
			chain := b.chain(b.signs, v)
			for _, c := range chain {
				visited[c.Y*b.width+c.X] = true
			}
			if !b.hasLiberties(b.signs, v) {
				return false
			}
		}
	}
	return true
}

func (b *Board) clone() *Board {
	next := &Board{
		width:    b.width,
		height:   b.height,
		signs:    b.Signs(),
		captures: b.captures,
	}
	if b.ko != nil {
		k := *b.ko
		next.ko = &k
	}
	return next
}
