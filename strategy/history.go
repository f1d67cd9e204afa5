package strategy

import (
	"tesuji-arena/engine"
	"tesuji-arena/policy"
	"tesuji-arena/types"
)

// Side selects a history relative to the player to move.
type Side int

const (
	Self Side = iota
	Opponent
)

// History keeps, per colour, the last policy.HistoryLength occupancy frames, most recent first.
// Frames are never modified after insertion.
type History struct {
	width  int
	height int
	black  [policy.HistoryLength]policy.Plane
	white  [policy.HistoryLength]policy.Plane
}

// NewHistory creates a history filled with empty frames.
func NewHistory(width, height int) *History {
	h := &History{width: width, height: height}
	empty := h.blank()
	for i := range h.black {
		h.black[i] = empty
		h.white[i] = empty
	}
	return h
}

func (h *History) blank() policy.Plane {
	plane := make(policy.Plane, h.height)
	for y := range plane {
		plane[y] = make([]float64, h.width)
	}
	return plane
}

// Push prepends the occupancy of b for both colours and evicts the oldest frames.
func (h *History) Push(b engine.Board) {
	black, white := h.blank(), h.blank()
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			switch b.Get(types.Vertex{X: x, Y: y}) {
			case types.Black.Sign():
				black[y][x] = 1
			case types.White.Sign():
				white[y][x] = 1
			}
		}
	}
	copy(h.black[1:], h.black[:policy.HistoryLength-1])
	copy(h.white[1:], h.white[:policy.HistoryLength-1])
	h.black[0] = black
	h.white[0] = white
}

// Frames returns the frames of side relative to toMove, most recent first.
func (h *History) Frames(side Side, toMove types.Player) []policy.Plane {
	p := toMove
	if side == Opponent {
		p = p.Opponent()
	}
	frames := h.white
	if p == types.Black {
		frames = h.black
	}
	return frames[:]
}
