package ui

import (
	"fmt"

	"tesuji-arena/engine"
	"tesuji-arena/game"
	"tesuji-arena/sgf"
	"tesuji-arena/types"
)

// LoadRecord replays the SGF file at path into a timeline for review. The cursor follows the
// replay and ends on the final position.
func LoadRecord(path string) (*game.Timeline, *sgf.Record, error) {
	rec, err := sgf.Read(path)
	if err != nil {
		return nil, nil, err
	}
	start, err := rec.Start()
	if err != nil {
		return nil, nil, err
	}
	tl := game.NewTimeline(start)
	_, err = rec.Replay(func(pm sgf.PlayedMove, b engine.Board) {
		tl.Append(pm.Player, pm.Move, b)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("replay %s: %w", rec.Info.FileName, err)
	}
	return tl, rec, nil
}

// RecordTitle names the players of a record.
func RecordTitle(info sgf.GameInfo) string {
	black, white := info.PlayerBlack, info.PlayerWhite
	if black == "" {
		black = "?"
	}
	if white == "" {
		white = "?"
	}
	title := black + " vs " + white
	if info.Result != "" {
		title += " (" + info.Result + ")"
	}
	return title
}

// FinalSnapshot describes the end of a replayed timeline.
func FinalSnapshot(tl *game.Timeline) game.Snapshot {
	last := tl.Tail
	snap := game.Snapshot{
		Turn:  last.Turn,
		State: game.Terminated,
		Board: last.Board,
	}
	snap.Captures = map[types.Player]int{
		types.Black: last.Board.Captures(types.Black),
		types.White: last.Board.Captures(types.White),
	}
	if last != tl.Root {
		f := *last
		snap.LastMove = &f
		snap.ToMove = last.Player.Opponent()
	}
	return snap
}
