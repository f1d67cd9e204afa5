package game

import (
	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Frame is a single position in a session's timeline.
type Frame struct {
	Turn   int           // 0 for the starting position
	Player types.Player  // who moved into this position; zero for the root
	Move   types.Move    // the move that produced Board
	Board  engine.Board
	Parent *Frame
	Next   *Frame
}

// Timeline tracks the in-memory sequence of positions of a session, with a cursor for review.
type Timeline struct {
	Root    *Frame
	Tail    *Frame
	Current *Frame
}

// NewTimeline creates a timeline starting at the given position.
func NewTimeline(start engine.Board) *Timeline {
	root := &Frame{Board: start}
	return &Timeline{Root: root, Tail: root, Current: root}
}

// Append adds a position after the tail. The cursor follows when it was on the tail.
func (t *Timeline) Append(p types.Player, m types.Move, b engine.Board) *Frame {
	f := &Frame{
		Turn:   t.Tail.Turn + 1,
		Player: p,
		Move:   m,
		Board:  b,
		Parent: t.Tail,
	}
	t.Tail.Next = f
	if t.Current == t.Tail {
		t.Current = f
	}
	t.Tail = f
	return f
}

// Back moves the cursor to its parent. Returns false if already at root.
func (t *Timeline) Back() bool {
	if t.Current == t.Root {
		return false
	}
	t.Current = t.Current.Parent
	return true
}

// Forward moves the cursor to the next position. Returns false if already at the tail.
func (t *Timeline) Forward() bool {
	if t.Current.Next == nil {
		return false
	}
	t.Current = t.Current.Next
	return true
}

// Live reports whether the cursor is on the latest position.
func (t *Timeline) Live() bool {
	return t.Current == t.Tail
}

// Follow moves the cursor to the tail.
func (t *Timeline) Follow() {
	t.Current = t.Tail
}

// Len returns the number of moves recorded, excluding the starting position.
func (t *Timeline) Len() int {
	return t.Tail.Turn
}

// MovesFromRoot returns the frames from the first move up to the cursor.
func (t *Timeline) MovesFromRoot() []*Frame {
	var path []*Frame
	for f := t.Current; f != t.Root; f = f.Parent {
		path = append(path, f)
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Last returns up to n frames ending at the cursor, oldest first.
func (t *Timeline) Last(n int) []*Frame {
	path := t.MovesFromRoot()
	if len(path) > n {
		path = path[len(path)-n:]
	}
	return path
}
