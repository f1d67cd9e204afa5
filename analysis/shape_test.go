package analysis

import (
	"testing"

	"tesuji-arena/types"
)

func TestClassifyShape(t *testing.T) {
	// . B . . .
	// B B B . W
	// . B . W W
	// . . . . W
	// B B . . .
	b := board(t, [][]types.Sign{
		{E, B, E, E, E},
		{B, B, B, E, W},
		{E, B, E, W, W},
		{E, E, E, E, W},
		{B, B, E, E, E},
	})
	tests := []struct {
		name   string
		v      types.Vertex
		shape  types.Shape
		orient types.Orientation
	}{
		{"full", types.Vertex{X: 1, Y: 1}, types.Full, 0},
		{"endpoint north", types.Vertex{X: 1, Y: 2}, types.Endpoint, 2},
		{"endpoint south", types.Vertex{X: 1, Y: 0}, types.Endpoint, 1},
		{"endpoint east", types.Vertex{X: 0, Y: 1}, types.Endpoint, 0},
		{"endpoint west", types.Vertex{X: 2, Y: 1}, types.Endpoint, 3},
		{"junction missing east", types.Vertex{X: 4, Y: 2}, types.Junction, 3},
		{"endpoint east white", types.Vertex{X: 3, Y: 2}, types.Endpoint, 0},
		{"endpoint pair", types.Vertex{X: 0, Y: 4}, types.Endpoint, 0},
		{"empty", types.Vertex{X: 2, Y: 2}, types.Isolated, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, o := ClassifyShape(b, tt.v)
			if shape != tt.shape || o != tt.orient {
				t.Errorf("ClassifyShape(%v) = %v/%d, want %v/%d", tt.v, shape, o, tt.shape, tt.orient)
			}
		})
	}
}

func TestClassifyShapeStraightAndCorner(t *testing.T) {
	b := board(t, [][]types.Sign{
		{B, B, B, B, E},
		{E, E, E, E, E},
		{W, E, E, W, W},
		{W, E, E, W, E},
		{W, E, E, E, E},
	})
	tests := []struct {
		v      types.Vertex
		shape  types.Shape
		orient types.Orientation
	}{
		{types.Vertex{X: 1, Y: 0}, types.Straight, 0},
		{types.Vertex{X: 2, Y: 0}, types.Straight, 0},
		{types.Vertex{X: 0, Y: 0}, types.Endpoint, 0},
		{types.Vertex{X: 3, Y: 0}, types.Endpoint, 3},
		{types.Vertex{X: 0, Y: 3}, types.Straight, 1},
		{types.Vertex{X: 3, Y: 2}, types.Corner, 0},
	}
	for _, tt := range tests {
		shape, o := ClassifyShape(b, tt.v)
		if shape != tt.shape || o != tt.orient {
			t.Errorf("ClassifyShape(%v) = %v/%d, want %v/%d", tt.v, shape, o, tt.shape, tt.orient)
		}
	}
}

func TestClassifyShapeCorners(t *testing.T) {
	// Ring of black stones; each corner of the ring bends a different way.
	b := board(t, [][]types.Sign{
		{B, B, B},
		{B, E, B},
		{B, B, B},
	})
	tests := []struct {
		v      types.Vertex
		orient types.Orientation
	}{
		{types.Vertex{X: 0, Y: 0}, 0}, // east and south
		{types.Vertex{X: 2, Y: 0}, 3}, // west and south
		{types.Vertex{X: 0, Y: 2}, 1}, // east and north
		{types.Vertex{X: 2, Y: 2}, 2}, // west and north
	}
	for _, tt := range tests {
		shape, o := ClassifyShape(b, tt.v)
		if shape != types.Corner || o != tt.orient {
			t.Errorf("ClassifyShape(%v) = %v/%d, want corner/%d", tt.v, shape, o, tt.orient)
		}
	}
}

func TestClassifyShapeIsolatedAndJunctions(t *testing.T) {
	b := board(t, [][]types.Sign{
		{E, B, E, W, E},
		{B, B, B, W, W},
		{E, E, E, W, E},
		{W, W, W, E, E},
		{E, W, E, E, E},
	})
	tests := []struct {
		v      types.Vertex
		shape  types.Shape
		orient types.Orientation
	}{
		{types.Vertex{X: 4, Y: 1}, types.Endpoint, 3},
		{types.Vertex{X: 1, Y: 1}, types.Junction, 2}, // missing south
		{types.Vertex{X: 3, Y: 1}, types.Junction, 1}, // missing west
		{types.Vertex{X: 1, Y: 3}, types.Junction, 0}, // missing north
		{types.Vertex{X: 1, Y: 4}, types.Endpoint, 2},
	}
	for _, tt := range tests {
		shape, o := ClassifyShape(b, tt.v)
		if shape != tt.shape || o != tt.orient {
			t.Errorf("ClassifyShape(%v) = %v/%d, want %v/%d", tt.v, shape, o, tt.shape, tt.orient)
		}
	}

	lone := board(t, [][]types.Sign{{E, E, E}, {E, W, E}, {E, E, E}})
	if shape, _ := ClassifyShape(lone, types.Vertex{X: 1, Y: 1}); shape != types.Isolated {
		t.Errorf("lone stone shape = %v, want isolated", shape)
	}
}

func TestFriendlyNeighbors(t *testing.T) {
	b := board(t, [][]types.Sign{
		{B, B, W},
		{B, W, W},
		{E, W, E},
	})
	tests := []struct {
		v    types.Vertex
		want int
	}{
		{types.Vertex{X: 0, Y: 0}, 2},
		{types.Vertex{X: 1, Y: 1}, 2},
		{types.Vertex{X: 2, Y: 1}, 2},
		{types.Vertex{X: 0, Y: 2}, 0},
	}
	for _, tt := range tests {
		if got := FriendlyNeighbors(b, tt.v); got != tt.want {
			t.Errorf("FriendlyNeighbors(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestShapeMap(t *testing.T) {
	b := board(t, [][]types.Sign{
		{B, E, E},
		{E, E, W},
		{E, E, W},
	})
	stones := ShapeMap(b)
	if len(stones) != 3 {
		t.Fatalf("len(ShapeMap) = %d, want 3", len(stones))
	}
	if stones[0].Owner != types.Black || stones[0].Shape != types.Isolated {
		t.Errorf("stones[0] = %+v, want isolated black", stones[0])
	}
	if stones[1].Owner != types.White || stones[1].Shape != types.Endpoint || stones[1].Orientation != 1 {
		t.Errorf("stones[1] = %+v, want white endpoint facing south", stones[1])
	}
}
