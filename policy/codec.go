// Package policy holds the policy model used by the policy-driven strategy: the input codec
// shared with the model's training pipeline and a feed-forward network implementation.
package policy

import (
	"fmt"

	"tesuji-arena/types"
)

// HistoryLength is the number of occupancy frames kept per colour.
const HistoryLength = 8

// Planes is the number of input planes per board point: HistoryLength frames for the player to
// move, HistoryLength for the opponent, an all-zero plane and an all-ones plane, in that order.
const Planes = 2*HistoryLength + 2

// Plane is a binary occupancy grid indexed as [y][x]; 1 where the colour has a stone.
type Plane [][]float64

// InputSize returns the length of an encoded input for a size x size board.
func InputSize(size int) int {
	return size * size * Planes
}

// OutputSize returns the length of a model output for a size x size board.
func OutputSize(size int) int {
	return size*size + 1
}

// PassIndex is the output index that encodes a pass. Its quotient by size equals size.
func PassIndex(size int) int {
	return size * size
}

// Encode stacks the self and opponent histories (most recent first) with the constant planes
// and lays them out point-major with x outermost: index ((x*height)+y)*Planes + plane.
func Encode(self, opponent []Plane, width, height int) ([]float64, error) {
	if len(self) != HistoryLength || len(opponent) != HistoryLength {
		return nil, fmt.Errorf("history has %d/%d frames, want %d", len(self), len(opponent), HistoryLength)
	}
	input := make([]float64, width*height*Planes)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			base := ((x * height) + y) * Planes
			for i := 0; i < HistoryLength; i++ {
				input[base+i] = self[i][y][x]
				input[base+HistoryLength+i] = opponent[i][y][x]
			}
			// plane 2*HistoryLength stays zero
			input[base+Planes-1] = 1
		}
	}
	return input, nil
}

// Decode maps an output index to a move on a size x size board: quotient is X, remainder is Y,
// and a quotient equal to size is a pass.
func Decode(index, size int) types.Move {
	q, r := index/size, index%size
	if q == size {
		return types.PassMove()
	}
	return types.PlayAt(types.Vertex{X: q, Y: r})
}

// Index is the inverse of Decode.
func Index(m types.Move, size int) int {
	if m.Pass {
		return PassIndex(size)
	}
	return m.Vertex.X*size + m.Vertex.Y
}

// ArgMax returns the index of the largest value; the first one wins ties.
func ArgMax(out []float64) int {
	best := 0
	for i, v := range out {
		if v > out[best] {
			best = i
		}
	}
	return best
}
