// Package game runs a Go game between move strategies: turn taking, pass tracking and
// termination on top of an engine.Board rules collaborator.
package game

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"tesuji-arena/analysis"
	"tesuji-arena/engine"
	"tesuji-arena/types"
)

var debugLog = log.New(io.Discard, "game ", log.Ltime|log.Lmicroseconds)

// SetDebugOutput directs the package debug log to w.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// State is the lifecycle state of a session.
type State int

const (
	Active State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "active"
}

// Session is a single game. It is not safe for concurrent use; readers on other goroutines
// should work from a Snapshot.
type Session struct {
	id         uuid.UUID
	board      engine.Board
	toMove     types.Player
	prevPassed bool
	state      State
	timeline   *Timeline
}

// New starts a session on board with black to move.
func New(board engine.Board) *Session {
	s := &Session{
		id:       uuid.New(),
		board:    board,
		toMove:   types.Black,
		timeline: NewTimeline(board),
	}
	debugLog.Printf("[%s] new %dx%d session", s.shortID(), board.Width(), board.Height())
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) shortID() string { return s.id.String()[:8] }

// Board returns the current position.
func (s *Session) Board() engine.Board { return s.board }

// ToMove returns the player whose turn it is.
func (s *Session) ToMove() types.Player { return s.toMove }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Active reports whether the session accepts further turns.
func (s *Session) Active() bool { return s.state == Active }

// Turn returns the number of turns played.
func (s *Session) Turn() int { return s.timeline.Len() }

// Timeline returns the recorded positions.
func (s *Session) Timeline() *Timeline { return s.timeline }

// TakeTurn asks strategy for the move of the player to move and applies it.
// It returns whether the session is still active afterwards. Strategy and rules errors are
// returned unchanged and leave the session as it was.
func (s *Session) TakeTurn(ctx context.Context, strategy engine.Strategy) (bool, error) {
	if s.state == Terminated {
		return false, nil
	}

	p := s.toMove
	m, err := strategy.NextMove(ctx, s.board, p)
	if err != nil {
		debugLog.Printf("[%s] %s (%s) failed: %v", s.shortID(), p, strategy.Name(), err)
		return true, err
	}

	opts := types.StrictMove
	if m.Pass {
		opts = types.MoveOptions{}
	}
	next, err := s.board.MakeMove(p, m, opts)
	if err != nil {
		debugLog.Printf("[%s] %s (%s) illegal %v: %v", s.shortID(), p, strategy.Name(), m, err)
		return true, err
	}

	if m.Pass && s.prevPassed {
		s.state = Terminated
	}
	s.board = next
	s.toMove = p.Opponent()
	s.prevPassed = m.Pass
	f := s.timeline.Append(p, m, next)

	if !next.IsValid() {
		s.state = Terminated
	}
	debugLog.Printf("[%s] turn %d: %s (%s) %v -> %s", s.shortID(), f.Turn, p, strategy.Name(), m, s.state)
	return s.state == Active, nil
}

// Scores returns the capture counts of both players.
func (s *Session) Scores() map[types.Player]int {
	return map[types.Player]int{
		types.Black: s.board.Captures(types.Black),
		types.White: s.board.Captures(types.White),
	}
}

// Territory scores the current position under policy.
func (s *Session) Territory(policy engine.TerritoryPolicy) ([][]types.TerritoryOwner, analysis.Counts) {
	return analysis.ScoreTerritory(s.board, policy)
}

// Snapshot is an immutable view of a session, safe to hand to another goroutine.
type Snapshot struct {
	ID       uuid.UUID
	Turn     int
	ToMove   types.Player
	State    State
	Board    engine.Board
	LastMove *Frame
	Captures map[types.Player]int
}

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.id,
		Turn:     s.timeline.Len(),
		ToMove:   s.toMove,
		State:    s.state,
		Board:    s.board,
		Captures: s.Scores(),
	}
	if s.timeline.Tail != s.timeline.Root {
		f := *s.timeline.Tail
		snap.LastMove = &f
	}
	return snap
}
