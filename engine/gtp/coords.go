// Package gtp converts between board vertices and GTP (Go Text Protocol) coordinate labels.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"tesuji-arena/types"
)

// GTP coordinate system:
// - Columns: A-T (skipping I to avoid confusion with 1)
// - Rows: 1-19 (from bottom of board)
// - Example: D4, Q16, K10
//
// Board coordinate system:
// - X: 0-18 (left to right)
// - Y: 0-18 (top to bottom)
// - Example: (3, 15) for D4 on a 19x19 board

// ColumnLabel returns the column letter for x.
func ColumnLabel(x int) string {
	col := 'A' + rune(x)
	if x >= 8 {
		col++ // Skip 'I'
	}
	return string(col)
}

// RowLabel returns the row number for y on a board of the given height.
func RowLabel(y, size int) string {
	return strconv.Itoa(size - y)
}

// Vertex converts a board vertex to GTP notation.
// For a 19x19 board: (0, 18) -> A1, (3, 15) -> D4, (15, 3) -> Q16
func Vertex(v types.Vertex, size int) string {
	return ColumnLabel(v.X) + RowLabel(v.Y, size)
}

// Move converts a move to GTP notation; passes are "pass".
func Move(m types.Move, size int) string {
	if m.Pass {
		return "pass"
	}
	return Vertex(m.Vertex, size)
}

// ParseMove converts GTP notation to a move.
// For a 19x19 board: A1 -> (0, 18), D4 -> (3, 15), Q16 -> (15, 3)
func ParseMove(vertex string, size int) (types.Move, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))

	if vertex == "PASS" {
		return types.PassMove(), nil
	}

	if len(vertex) < 2 {
		return types.Move{}, fmt.Errorf("invalid vertex: %s", vertex)
	}

	// Parse column (A-T, no I)
	if vertex[0] == 'I' {
		return types.Move{}, fmt.Errorf("invalid column in vertex: %s", vertex)
	}
	col := int(vertex[0]) - 'A'
	if col < 0 || col > 19 {
		return types.Move{}, fmt.Errorf("invalid column in vertex: %s", vertex)
	}
	if col > 7 {
		col-- // Account for skipped 'I'
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return types.Move{}, fmt.Errorf("invalid row in vertex: %s", vertex)
	}

	// Convert row to Y coordinate (invert from bottom-up to top-down)
	y := size - row

	if col < 0 || col >= size || y < 0 || y >= size {
		return types.Move{}, fmt.Errorf("vertex out of bounds: %s", vertex)
	}

	return types.PlayAt(types.Vertex{X: col, Y: y}), nil
}
