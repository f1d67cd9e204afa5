// Package analysis derives board analytics used for scoring and visualization:
// liberty classification, territory ownership and stone connectivity shapes.
package analysis

import (
	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Result holds the per-cell analysis of a board, indexed as [y][x].
type Result struct {
	Liberties [][]types.LibertyClass
	Territory [][]types.TerritoryOwner
}

// Analyze computes the liberty classification and territory owner of every cell of b.
func Analyze(b engine.Board) *Result {
	return &Result{
		Liberties: Liberties(b),
		Territory: Territory(b),
	}
}

// Liberties classifies every empty cell by the owners of its occupied neighbours.
// Occupied cells are reported as LibertyNone.
func Liberties(b engine.Board) [][]types.LibertyClass {
	grid := make([][]types.LibertyClass, b.Height())
	for y := range grid {
		grid[y] = make([]types.LibertyClass, b.Width())
		for x := range grid[y] {
			v := types.Vertex{X: x, Y: y}
			if b.Get(v) != types.Empty {
				continue
			}
			grid[y][x] = classifyLiberty(b, v)
		}
	}
	return grid
}

func classifyLiberty(b engine.Board, v types.Vertex) types.LibertyClass {
	var black, white bool
	for _, n := range b.Neighbors(v) {
		switch b.Get(n) {
		case types.Black.Sign():
			black = true
		case types.White.Sign():
			white = true
		}
	}
	switch {
	case black && white:
		return types.LibertyShared
	case black:
		return types.LibertyBlack
	case white:
		return types.LibertyWhite
	}
	return types.LibertyNone
}

// EmptyChains partitions the empty cells of b into maximal 4-connected regions.
// Every empty cell appears in exactly one chain.
func EmptyChains(b engine.Board) [][]types.Vertex {
	visited := make([][]bool, b.Height())
	for y := range visited {
		visited[y] = make([]bool, b.Width())
	}
	var chains [][]types.Vertex
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := types.Vertex{X: x, Y: y}
			if visited[y][x] || b.Get(v) != types.Empty {
				continue
			}
			chain := b.Chain(v)
			for _, c := range chain {
				visited[c.Y][c.X] = true
			}
			chains = append(chains, chain)
		}
	}
	return chains
}

// borderOwners returns the distinct owners of occupied cells adjacent to the chain.
func borderOwners(b engine.Board, chain []types.Vertex) map[types.Sign]bool {
	owners := make(map[types.Sign]bool, 2)
	for _, v := range chain {
		for _, n := range b.Neighbors(v) {
			if s := b.Get(n); s != types.Empty {
				owners[s] = true
			}
		}
	}
	return owners
}

// Territory assigns each empty chain to the single colour bordering it, or Neutral when the
// chain borders no stones or both colours. Occupied cells are Neutral.
func Territory(b engine.Board) [][]types.TerritoryOwner {
	grid := make([][]types.TerritoryOwner, b.Height())
	for y := range grid {
		grid[y] = make([]types.TerritoryOwner, b.Width())
	}
	for _, chain := range EmptyChains(b) {
		owners := borderOwners(b, chain)
		if len(owners) != 1 {
			continue
		}
		var owner types.TerritoryOwner
		for s := range owners {
			owner = types.TerritoryOf(s.Player())
		}
		for _, v := range chain {
			grid[v.Y][v.X] = owner
		}
	}
	return grid
}
