package strategy

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

var (
	// ErrNoStrategies is returned for an empty composite.
	ErrNoStrategies = errors.New("composite has no strategies")
	// ErrZeroWeight is returned when the composite weights sum to zero.
	ErrZeroWeight = errors.New("composite weights sum to zero")
	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("negative composite weight")
)

// Weighted pairs a strategy with its selection weight.
type Weighted struct {
	Weight   float64
	Strategy engine.Strategy
}

// Composite delegates every turn to a sub-strategy drawn by weight.
type Composite struct {
	entries []Weighted
	sum     float64

	mu  sync.Mutex
	rng *rand.Rand
}

var _ engine.Strategy = (*Composite)(nil)

// NewComposite validates the entries and builds a composite drawing from rng.
// A nil rng is seeded from the clock.
func NewComposite(rng *rand.Rand, entries ...Weighted) (*Composite, error) {
	if len(entries) == 0 {
		return nil, ErrNoStrategies
	}
	sum := 0.0
	for i, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: entry %d (%s) has weight %g", ErrNegativeWeight, i, e.Strategy.Name(), e.Weight)
		}
		sum += e.Weight
	}
	if sum == 0 {
		return nil, ErrZeroWeight
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composite{
		entries: append([]Weighted(nil), entries...),
		sum:     sum,
		rng:     rng,
	}, nil
}

// Name lists the sub-strategies with their weights.
func (c *Composite) Name() string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = fmt.Sprintf("%s:%g", e.Strategy.Name(), e.Weight)
	}
	return "composite(" + strings.Join(parts, ",") + ")"
}

// Init initializes every sub-strategy concurrently. The first error wins.
func (c *Composite) Init(ctx context.Context, width, height int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, e := range c.entries {
		s := e.Strategy
		g.Go(func() error {
			if err := s.Init(ctx, width, height); err != nil {
				return fmt.Errorf("%s: %w", s.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Pick draws the index of a sub-strategy: a uniform value in [0, sum) is reduced by each
// weight in order until it drops below zero.
func (c *Composite) Pick() int {
	c.mu.Lock()
	value := c.rng.Float64() * c.sum
	c.mu.Unlock()
	for i, e := range c.entries {
		value -= e.Weight
		if value < 0 {
			return i
		}
	}
	// Rounding can leave value at zero after the last weight.
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Weight > 0 {
			return i
		}
	}
	return len(c.entries) - 1
}

// NextMove delegates to a freshly drawn sub-strategy.
func (c *Composite) NextMove(ctx context.Context, b engine.Board, p types.Player) (types.Move, error) {
	s := c.entries[c.Pick()].Strategy
	m, err := s.NextMove(ctx, b, p)
	if err == nil {
		debugLog.Printf("composite: %s played %v via %s", p, m, s.Name())
	}
	return m, err
}
