package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tesuji-arena/config"
	"tesuji-arena/engine"
	"tesuji-arena/game"
)

// Spectator shows a game between strategies as it is played, or a finished game for review.
// The game runs on its own goroutine; every turn reaches the UI as a snapshot through
// QueueUpdateDraw, and the review timeline is only touched on the UI goroutine.
type Spectator struct {
	app   *tview.Application
	board *BoardView
	panel *InfoPanel
	hint  *tview.TextView
	frame *tview.Flex

	focusMode bool
	onQuit    func()

	// UI goroutine only
	gen  int
	view *game.Timeline
	snap game.Snapshot
	err  error
	live bool

	mu     sync.Mutex
	paused bool
	steps  int
	wake   chan struct{}
	cancel context.CancelFunc
}

// NewSpectator builds the spectator screen. onQuit runs on the UI goroutine when the user
// leaves it.
func NewSpectator(app *tview.Application, c *config.Config, policy engine.TerritoryPolicy, onQuit func()) *Spectator {
	s := &Spectator{
		app:    app,
		board:  NewBoardView(c, policy),
		panel:  NewInfoPanel(policy),
		hint:   tview.NewTextView(),
		onQuit: onQuit,
		wake:   make(chan struct{}, 1),
	}
	s.hint.SetDynamicColors(true)
	s.hint.SetBorder(true)
	s.hint.SetBorderPadding(0, 0, 1, 1)
	s.hint.SetTitle(" Status ")
	s.hint.SetTitleAlign(tview.AlignLeft)
	s.frame = CreateGameLayout(s.board, s.panel, s.hint)
	s.board.Box.SetInputCapture(s.handleKey)
	return s
}

// Frame returns the root layout of the screen.
func (s *Spectator) Frame() *tview.Flex {
	return s.frame
}

// SetConfig applies a changed theme.
func (s *Spectator) SetConfig(c *config.Config) {
	s.board.SetConfig(c)
}

// SetTerritoryPolicy changes how the overlays and the panel score territory.
func (s *Spectator) SetTerritoryPolicy(policy engine.TerritoryPolicy) {
	s.board.policy = policy
	s.panel.policy = policy
	s.board.analyze()
}

// Start plays sess with strategy on a new goroutine and shows it. Any game already running
// is cancelled. It must be called on the UI goroutine or before the application runs.
func (s *Spectator) Start(ctx context.Context, sess *game.Session, strategy engine.Strategy, opts game.PlayOptions) {
	s.Stop()
	s.gen++
	gen := s.gen
	s.view = game.NewTimeline(sess.Board())
	s.snap = sess.Snapshot()
	s.err = nil
	s.live = true
	s.panel.SetTitle(strategy.Name())

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.paused, s.steps = false, 0
	s.mu.Unlock()

	opts.Wait = s.wait
	opts.OnTurn = func(snap game.Snapshot) {
		s.app.QueueUpdateDraw(func() {
			if gen == s.gen {
				s.apply(snap)
			}
		})
	}
	go func() {
		err := game.Play(ctx, sess, strategy, opts)
		final := sess.Snapshot()
		s.app.QueueUpdateDraw(func() {
			if gen != s.gen {
				return
			}
			s.live = false
			s.snap = final
			if err != nil && !errors.Is(err, context.Canceled) {
				s.err = err
			}
			s.refresh()
		})
	}()
	s.refresh()
}

// Review shows a recorded timeline without a running game.
func (s *Spectator) Review(title string, view *game.Timeline, final game.Snapshot) {
	s.Stop()
	s.gen++
	s.view = view
	s.snap = final
	s.err = nil
	s.live = false
	s.panel.SetTitle(title)
	s.refresh()
}

// Stop cancels the running game, if any.
func (s *Spectator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// TogglePause pauses or resumes the game and reports whether it is now paused.
func (s *Spectator) TogglePause() bool {
	s.mu.Lock()
	s.paused = !s.paused
	s.steps = 0
	paused := s.paused
	s.mu.Unlock()
	s.poke()
	return paused
}

// Step pauses the game and lets exactly one more turn through.
func (s *Spectator) Step() {
	s.mu.Lock()
	s.paused = true
	s.steps++
	s.mu.Unlock()
	s.poke()
}

func (s *Spectator) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *Spectator) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// wait blocks the game goroutine while paused.
func (s *Spectator) wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		if !s.paused {
			s.mu.Unlock()
			return nil
		}
		if s.steps > 0 {
			s.steps--
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
	}
}

func (s *Spectator) apply(snap game.Snapshot) {
	if f := snap.LastMove; f != nil {
		s.view.Append(f.Player, f.Move, f.Board)
	}
	s.snap = snap
	s.refresh()
}

func (s *Spectator) refresh() {
	if s.view == nil {
		return
	}
	s.board.Show(s.view.Current)
	s.panel.Update(s.snap, s.view)
	s.refreshHint()
}

func (s *Spectator) refreshHint() {
	if s.focusMode {
		s.hint.SetText("  f to toggle")
		return
	}
	var status string
	switch {
	case s.err != nil:
		status = fmt.Sprintf("[red]%s[-]", tview.Escape(s.err.Error()))
	case !s.live:
		status = "───────── Game Complete ─────────"
	case s.isPaused():
		status = "[yellow]Paused[-]"
	default:
		status = fmt.Sprintf("%s to move", stoneLabel(s.snap.ToMove))
	}
	if !s.view.Live() {
		status += "   [yellow]reviewing[-]"
	}
	overlays := ""
	if s.board.Overlays()&OverlayLiberties != 0 {
		overlays += " liberties"
	}
	if s.board.Overlays()&OverlayTerritory != 0 {
		overlays += " territory"
	}
	if overlays != "" {
		status += "   [dimgray]showing" + overlays + "[-]"
	}
	s.hint.SetText("  " + status + `
  space pause   n step   ←→ review   end live
  l liberties   t territory   f focus   q quit`)
}

func (s *Spectator) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if s.view == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyLeft:
		s.view.Back()
	case tcell.KeyRight:
		s.view.Forward()
	case tcell.KeyHome:
		for s.view.Back() {
		}
	case tcell.KeyEnd:
		s.view.Follow()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			s.Stop()
			s.gen++
			if s.onQuit != nil {
				s.onQuit()
			}
			return nil
		case ' ':
			s.TogglePause()
		case 'n':
			s.Step()
		case 'l':
			s.board.Toggle(OverlayLiberties)
		case 't':
			s.board.Toggle(OverlayTerritory)
		case 'f':
			s.focusMode = !s.focusMode
			if s.focusMode {
				BuildFocusLayout(s.frame, s.board)
			} else {
				RebuildNormalLayout(s.frame, s.board, s.panel, s.hint)
			}
		default:
			return event
		}
	default:
		return event
	}
	s.refresh()
	return nil
}
