package analysis

import (
	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Cardinal neighbour slots used by the shape tables.
const (
	north = iota
	east
	south
	west
)

var cardinal = [4][2]int{
	north: {0, -1},
	east:  {1, 0},
	south: {0, 1},
	west:  {-1, 0},
}

// Orientation tables shared with the 3D and terminal renderers; the values are part of
// their asset conventions and must not be reordered.
var (
	// Keyed by the matching neighbour: N->2, E->0, S->1, W->3. The corner and junction tables
	// follow the [west, east, north, south] neighbour order; read in that order these values
	// would mean W->2, E->0, N->1, S->3.
	endpointOrientation = [4]types.Orientation{north: 2, east: 0, south: 1, west: 3} // by matching neighbour
	junctionOrientation = [4]types.Orientation{north: 0, east: 3, south: 2, west: 1} // by missing neighbour
)

// Stone is a classified stone.
type Stone struct {
	Vertex      types.Vertex
	Owner       types.Player
	Shape       types.Shape
	Orientation types.Orientation
}

// matches reports, per cardinal slot, whether the neighbour is on the board and owned like v.
func matches(b engine.Board, v types.Vertex) [4]bool {
	var m [4]bool
	owner := b.Get(v)
	for i, d := range cardinal {
		n := types.Vertex{X: v.X + d[0], Y: v.Y + d[1]}
		m[i] = b.Has(n) && b.Get(n) == owner
	}
	return m
}

// ClassifyShape returns the connectivity shape of the stone at v and its orientation.
// v must be occupied; empty cells classify as Isolated.
func ClassifyShape(b engine.Board, v types.Vertex) (types.Shape, types.Orientation) {
	if b.Get(v) == types.Empty {
		return types.Isolated, 0
	}
	m := matches(b, v)
	count := 0
	for _, ok := range m {
		if ok {
			count++
		}
	}

	switch count {
	case 1:
		return types.Endpoint, endpointOrientation[slotWhere(m, true)]
	case 2:
		switch {
		case m[west] && m[east]:
			return types.Straight, 0
		case m[north] && m[south]:
			return types.Straight, 1
		case m[west] && m[north]:
			return types.Corner, 2
		case m[west] && m[south]:
			return types.Corner, 3
		case m[east] && m[north]:
			return types.Corner, 1
		default:
			return types.Corner, 0
		}
	case 3:
		return types.Junction, junctionOrientation[slotWhere(m, false)]
	case 4:
		return types.Full, 0
	}
	return types.Isolated, 0
}

func slotWhere(m [4]bool, want bool) int {
	for i, ok := range m {
		if ok == want {
			return i
		}
	}
	return 0
}

// FriendlyNeighbors counts the orthogonal neighbours of v owned by the same colour.
func FriendlyNeighbors(b engine.Board, v types.Vertex) int {
	if b.Get(v) == types.Empty {
		return 0
	}
	n := 0
	for _, ok := range matches(b, v) {
		if ok {
			n++
		}
	}
	return n
}

// ShapeMap classifies every stone on the board in row-major order.
func ShapeMap(b engine.Board) []Stone {
	var stones []Stone
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := types.Vertex{X: x, Y: y}
			s := b.Get(v)
			if s == types.Empty {
				continue
			}
			shape, o := ClassifyShape(b, v)
			stones = append(stones, Stone{Vertex: v, Owner: s.Player(), Shape: shape, Orientation: o})
		}
	}
	return stones
}
