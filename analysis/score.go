package analysis

import (
	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Counts tallies a board per colour.
type Counts struct {
	Stones    map[types.Player]int
	Territory map[types.Player]int
	Neutral   int
}

// ScoreTerritory runs the territory pass under policy and tallies stones and territory.
// With engine.RequireBothPlayers a board on which fewer than two colours have stones
// yields an all-neutral grid.
func ScoreTerritory(b engine.Board, policy engine.TerritoryPolicy) ([][]types.TerritoryOwner, Counts) {
	counts := Counts{
		Stones:    map[types.Player]int{types.Black: 0, types.White: 0},
		Territory: map[types.Player]int{types.Black: 0, types.White: 0},
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if s := b.Get(types.Vertex{X: x, Y: y}); s != types.Empty {
				counts.Stones[s.Player()]++
			}
		}
	}

	var grid [][]types.TerritoryOwner
	if policy == engine.RequireBothPlayers && (counts.Stones[types.Black] == 0 || counts.Stones[types.White] == 0) {
		grid = make([][]types.TerritoryOwner, b.Height())
		for y := range grid {
			grid[y] = make([]types.TerritoryOwner, b.Width())
		}
	} else {
		grid = Territory(b)
	}

	for y := range grid {
		for x, owner := range grid[y] {
			switch owner {
			case types.TerritoryBlack:
				counts.Territory[types.Black]++
			case types.TerritoryWhite:
				counts.Territory[types.White]++
			default:
				if b.Get(types.Vertex{X: x, Y: y}) == types.Empty {
					counts.Neutral++
				}
			}
		}
	}
	return grid, counts
}
