package strategy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tesuji-arena/engine"
	"tesuji-arena/policy"
	"tesuji-arena/types"
)

var (
	// ErrUnsupportedSize is returned when a board does not match the policy model.
	ErrUnsupportedSize = errors.New("unsupported board size")
	// ErrNotInitialized is returned when NextMove is called before Init.
	ErrNotInitialized = errors.New("strategy not initialized")
)

// ModelLoader provides the policy model on Init.
type ModelLoader func(ctx context.Context) (engine.PolicyModel, error)

// StaticModel returns a loader that hands out m.
func StaticModel(m engine.PolicyModel) ModelLoader {
	return func(context.Context) (engine.PolicyModel, error) { return m, nil }
}

// Policy plays the arg-max of a policy model fed with the last eight positions of each colour.
type Policy struct {
	load ModelLoader

	// FilterIllegal makes NextMove walk the outputs by descending probability and play the
	// first legal vertex or pass, instead of the raw arg-max.
	FilterIllegal bool

	model   engine.PolicyModel
	size    int
	history *History
}

var _ engine.Strategy = (*Policy)(nil)

// NewPolicy creates a policy strategy whose model is obtained from load on Init.
func NewPolicy(load ModelLoader) *Policy {
	return &Policy{load: load}
}

// Name returns "policy".
func (s *Policy) Name() string { return "policy" }

// Init loads the model and checks that the board is square and matches it.
func (s *Policy) Init(ctx context.Context, width, height int) error {
	if width != height {
		return fmt.Errorf("%w: %dx%d, policy boards are square", ErrUnsupportedSize, width, height)
	}
	model, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("load policy model: %w", err)
	}
	if model.Size() != width {
		return fmt.Errorf("%w: %dx%d, model plays %dx%d", ErrUnsupportedSize, width, height, model.Size(), model.Size())
	}
	s.model = model
	s.size = width
	s.history = NewHistory(width, height)
	debugLog.Printf("policy: ready for %dx%d", width, height)
	return nil
}

// NextMove records b in the history, then predicts from the history.
func (s *Policy) NextMove(ctx context.Context, b engine.Board, p types.Player) (types.Move, error) {
	if s.history == nil {
		return types.Move{}, ErrNotInitialized
	}
	if b.Width() != s.size || b.Height() != s.size {
		return types.Move{}, fmt.Errorf("%w: %dx%d, initialized for %dx%d", ErrUnsupportedSize, b.Width(), b.Height(), s.size, s.size)
	}

	s.history.Push(b)
	input, err := policy.Encode(s.history.Frames(Self, p), s.history.Frames(Opponent, p), s.size, s.size)
	if err != nil {
		return types.Move{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.Move{}, err
	}
	out, err := s.model.Predict(input)
	if err != nil {
		return types.Move{}, fmt.Errorf("predict: %w", err)
	}
	if len(out) != policy.OutputSize(s.size) {
		return types.Move{}, fmt.Errorf("predict: %d outputs, want %d", len(out), policy.OutputSize(s.size))
	}

	if !s.FilterIllegal {
		m := policy.Decode(policy.ArgMax(out), s.size)
		s.logChoice(p, m, out)
		return m, nil
	}
	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return out[order[i]] > out[order[j]] })
	for rank, idx := range order {
		m := policy.Decode(idx, s.size)
		if m.Pass || b.AnalyzeMove(p, m.Vertex).Legal() {
			if rank > 0 {
				debugLog.Printf("policy: %s skipped %d illegal outputs", p, rank)
			}
			s.logChoice(p, m, out)
			return m, nil
		}
	}
	return types.PassMove(), nil
}

func (s *Policy) logChoice(p types.Player, m types.Move, out []float64) {
	debugLog.Printf("policy: %s plays %v (p=%.3f, pass p=%.3f)", p, m,
		out[policy.Index(m, s.size)], out[policy.PassIndex(s.size)])
}
