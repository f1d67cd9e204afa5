package strategy

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tesuji-arena/engine"
	"tesuji-arena/policy"
)

// ErrUnknownKind is returned for a strategy kind FromConfig does not know.
var ErrUnknownKind = errors.New("unknown strategy kind")

// seededHidden is the hidden layout of the network used when no model file is configured.
var seededHidden = []int{64}

// ModelFromConfig returns a loader for cfg.ModelPath, or one seeding an untrained network of
// the configured board size when no path is set.
func ModelFromConfig(cfg engine.GameConfig) ModelLoader {
	return func(ctx context.Context) (engine.PolicyModel, error) {
		if cfg.ModelPath == "" {
			debugLog.Printf("policy: no model configured, seeding %dx%d network", cfg.BoardSize, cfg.BoardSize)
			return policy.Seeded(cfg.BoardSize, seededHidden, cfg.Seed), nil
		}
		net, err := policy.Load(cfg.ModelPath)
		if err != nil {
			return nil, err
		}
		debugLog.Printf("policy: loaded %s (%dx%d)", net.Name(), net.Size(), net.Size())
		return net, nil
	}
}

// FromConfig builds the weighted strategy mix of cfg, behind cfg.Opening when one is set.
// A single entry is returned unwrapped.
// rng seeds every random source the strategies use; nil seeds from the clock.
func FromConfig(cfg engine.GameConfig, rng *rand.Rand) (engine.Strategy, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var entries []Weighted
	for _, sw := range cfg.Strategies {
		var s engine.Strategy
		switch sw.Kind {
		case "random":
			s = NewRandom(rand.New(rand.NewSource(rng.Int63())))
		case "policy":
			p := NewPolicy(ModelFromConfig(cfg))
			p.FilterIllegal = cfg.FilterIllegal
			s = p
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, sw.Kind)
		}
		if sw.Weight == 0 {
			continue
		}
		entries = append(entries, Weighted{Weight: sw.Weight, Strategy: s})
	}
	var s engine.Strategy
	if len(entries) == 1 && entries[0].Weight > 0 {
		s = entries[0].Strategy
	} else {
		c, err := NewComposite(rand.New(rand.NewSource(rng.Int63())), entries...)
		if err != nil {
			return nil, err
		}
		s = c
	}
	if len(cfg.Opening) > 0 {
		s = NewOpening(cfg.Opening, s)
	}
	return s, nil
}
