// Package sgf reads SGF game records into positions for analysis.
package sgf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/types"
)

// GameInfo holds metadata parsed from an SGF file header.
type GameInfo struct {
	FilePath    string
	FileName    string
	BoardSize   int
	Komi        float64
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	MoveCount   int
}

// ParseHeader reads an SGF file and extracts metadata from the root node.
func ParseHeader(filePath string) (*GameInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	props := parseProperties(content)

	boardSize := 19
	if v, ok := props["SZ"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			boardSize = n
		}
	}

	komi := 0.0
	if v, ok := props["KM"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			komi = f
		}
	}

	info := &GameInfo{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		BoardSize:   boardSize,
		Komi:        komi,
		PlayerBlack: props["PB"],
		PlayerWhite: props["PW"],
		Date:        props["DT"],
		Result:      props["RE"],
		MoveCount:   countMoves(content),
	}

	return info, nil
}

// PlayedMove is a move node of a record.
type PlayedMove struct {
	Player types.Player
	Move   types.Move
}

// Record is the content of an SGF file: header, setup stones and the main line.
type Record struct {
	Info  GameInfo
	Setup [][]types.Sign // [y][x]
	Moves []PlayedMove
}

// Read parses an SGF file.
func Read(filePath string) (*Record, error) {
	info, err := ParseHeader(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	content := string(data)

	rec := &Record{Info: *info, Setup: makeSigns(info.BoardSize)}
	applySetup(content, rec.Setup, info.BoardSize)
	for _, node := range parseNodes(content) {
		p, m, ok := parseMoveNode(node)
		if !ok {
			continue
		}
		rec.Moves = append(rec.Moves, PlayedMove{Player: p, Move: m})
	}
	return rec, nil
}

// Start returns the position after the setup stones.
func (r *Record) Start() (engine.Board, error) {
	b, err := rules.FromSigns(r.Setup)
	if err != nil {
		return nil, fmt.Errorf("setup position: %w", err)
	}
	return b, nil
}

// Replay plays the main line through the rules engine, calling visit after every move.
// Moves are applied as recorded, without overwrite, suicide or ko prevention. Moves off the
// board are skipped.
func (r *Record) Replay(visit func(PlayedMove, engine.Board)) (engine.Board, error) {
	b, err := r.Start()
	if err != nil {
		return nil, err
	}
	for _, pm := range r.Moves {
		next, err := b.MakeMove(pm.Player, pm.Move, types.MoveOptions{})
		if errors.Is(err, types.ErrOutOfBounds) {
			continue
		}
		if err != nil {
			return nil, err
		}
		b = next
		if visit != nil {
			visit(pm, b)
		}
	}
	return b, nil
}

// ReplayToEnd parses an SGF file and replays all moves to produce the final board position.
// Returns the board, the move count, and any error.
func ReplayToEnd(filePath string) (engine.Board, int, error) {
	rec, err := Read(filePath)
	if err != nil {
		return nil, 0, err
	}
	b, err := rec.Replay(nil)
	if err != nil {
		return nil, 0, err
	}
	return b, len(rec.Moves), nil
}

// ListRecords returns the headers of the .sgf files in dir, last file name first.
// Files that cannot be read are skipped. A missing dir yields no records.
func ListRecords(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read record dir: %w", err)
	}

	var records []GameInfo
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".sgf") {
			continue
		}
		info, err := ParseHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		records = append(records, *info)
	}
	return records, nil
}

func makeSigns(size int) [][]types.Sign {
	signs := make([][]types.Sign, size)
	for i := range signs {
		signs[i] = make([]types.Sign, size)
	}
	return signs
}

// parseProperties extracts KEY[value] pairs from the root node of an SGF string.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	// Find the root node: starts after "(;"
	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2 // skip "(;"

	// Root node ends at the next ";" or ")"
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	root := content[start:end]
	extractProps(root, props)
	return props
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		// Skip whitespace
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		// Read property identifier (uppercase letters)
		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		// Read all property values (e.g., AB[aa][bb][cc])
		for i < len(node) && node[i] == '[' {
			i++ // skip '['
			valStart := i
			for i < len(node) && node[i] != ']' {
				if node[i] == '\\' && i+1 < len(node) {
					i++ // skip escaped char
				}
				i++
			}
			val := node[valStart:i]
			if i < len(node) {
				i++ // skip ']'
			}
			props[key] = val // last value wins for simple props
		}
	}
}

// countMoves counts the number of move nodes (;B[...] or ;W[...]) in the SGF.
func countMoves(content string) int {
	count := 0
	i := 0
	for i < len(content) {
		if content[i] == ';' && i+1 < len(content) {
			next := content[i+1]
			if (next == 'B' || next == 'W') && i+2 < len(content) && content[i+2] == '[' {
				count++
			}
		}
		i++
	}
	return count
}

// parseNodes returns all node strings after the root node.
func parseNodes(content string) []string {
	var nodes []string

	// Find first ";" after "(;"
	start := strings.Index(content, "(;")
	if start == -1 {
		return nodes
	}
	start += 2

	// Skip root node to find subsequent ";"
	i := start
	for i < len(content) {
		if content[i] == ';' {
			break
		}
		if content[i] == '[' {
			// Skip value
			i++
			for i < len(content) && content[i] != ']' {
				if content[i] == '\\' && i+1 < len(content) {
					i++
				}
				i++
			}
		}
		i++
	}

	// Now parse subsequent nodes
	for i < len(content) {
		if content[i] == ';' {
			nodeStart := i
			i++
			// Read until next ';' or ')'
			for i < len(content) && content[i] != ';' && content[i] != ')' {
				if content[i] == '[' {
					i++
					for i < len(content) && content[i] != ']' {
						if content[i] == '\\' && i+1 < len(content) {
							i++
						}
						i++
					}
				}
				i++
			}
			nodes = append(nodes, content[nodeStart:i])
		} else {
			i++
		}
	}

	return nodes
}

// parseMoveNode extracts the player and move from a move node like ";B[pd]".
// An empty value is a pass.
func parseMoveNode(node string) (types.Player, types.Move, bool) {
	node = strings.TrimSpace(node)
	if len(node) < 2 || node[0] != ';' {
		return 0, types.Move{}, false
	}

	p := types.Black
	switch node[1] {
	case 'B':
	case 'W':
		p = types.White
	default:
		return 0, types.Move{}, false
	}

	// Find the value in brackets
	bracketStart := strings.Index(node, "[")
	bracketEnd := strings.Index(node, "]")
	if bracketStart == -1 || bracketEnd == -1 || bracketEnd <= bracketStart {
		return 0, types.Move{}, false
	}

	coord := node[bracketStart+1 : bracketEnd]
	if coord == "" {
		return p, types.PassMove(), true
	}
	v, ok := parseCoord(coord)
	if !ok {
		return 0, types.Move{}, false
	}
	return p, types.PlayAt(v), true
}

// parseCoord converts an SGF letter pair ("pd") to a vertex.
func parseCoord(coord string) (types.Vertex, bool) {
	if len(coord) != 2 {
		return types.Vertex{}, false
	}
	return types.Vertex{X: int(coord[0] - 'a'), Y: int(coord[1] - 'a')}, true
}

// applySetup applies AB[]/AW[] setup properties from the SGF content.
func applySetup(content string, board [][]types.Sign, boardSize int) {
	// Setup may sit in the root node or any later node.
	i := strings.Index(content, "(;")
	if i == -1 {
		return
	}

	for i < len(content) {
		if content[i] == 'A' && i+1 < len(content) && (content[i+1] == 'B' || content[i+1] == 'W') {
			sign := types.Black.Sign()
			if content[i+1] == 'W' {
				sign = types.White.Sign()
			}
			i += 2

			// Read all coordinate values
			for i < len(content) && content[i] == '[' {
				i++ // skip '['
				start := i
				for i < len(content) && content[i] != ']' {
					i++
				}
				if v, ok := parseCoord(content[start:i]); ok && v.X >= 0 && v.X < boardSize && v.Y >= 0 && v.Y < boardSize {
					board[v.Y][v.X] = sign
				}
				if i < len(content) {
					i++ // skip ']'
				}
			}
		} else {
			i++
		}
	}
}
