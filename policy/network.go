package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/patrikeh/go-deep"

	"tesuji-arena/engine"
)

// ErrBadModel is returned when a model file does not describe a usable network.
var ErrBadModel = errors.New("invalid policy model")

// Model is the on-disk description of a network.
type Model struct {
	Name    string        `json:"name"`
	Size    int           `json:"size"`
	Hidden  []int         `json:"hidden"`
	Weights [][][]float64 `json:"weights"`
}

// Network is a feed-forward policy network over a square board.
type Network struct {
	name string
	size int
	net  *deep.Neural
}

var _ engine.PolicyModel = (*Network)(nil)

func newNeural(size int, hidden []int, weight deep.WeightInitializer) *deep.Neural {
	layout := append(append([]int{}, hidden...), OutputSize(size))
	return deep.NewNeural(&deep.Config{
		Inputs:     InputSize(size),
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeMultiClass,
		Weight:     weight,
		Bias:       true,
	})
}

// Seeded builds an untrained network with normally distributed weights drawn from seed.
func Seeded(size int, hidden []int, seed int64) *Network {
	rng := rand.New(rand.NewSource(seed))
	weight := func() float64 { return rng.NormFloat64() * 0.05 }
	return &Network{
		name: fmt.Sprintf("seeded-%d", seed),
		size: size,
		net:  newNeural(size, hidden, weight),
	}
}

// FromModel builds a network from a decoded model description.
func FromModel(m Model) (*Network, error) {
	if m.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrBadModel, m.Size)
	}
	if len(m.Weights) != len(m.Hidden)+1 {
		return nil, fmt.Errorf("%w: %d weight layers for %d hidden layers", ErrBadModel, len(m.Weights), len(m.Hidden))
	}
	layout := append(append([]int{}, m.Hidden...), OutputSize(m.Size))
	for i, layer := range m.Weights {
		if len(layer) != layout[i] {
			return nil, fmt.Errorf("%w: layer %d has %d neurons, want %d", ErrBadModel, i, len(layer), layout[i])
		}
	}
	net := newNeural(m.Size, m.Hidden, deep.NewUniform(0, 0))
	net.ApplyWeights(m.Weights)
	return &Network{name: m.Name, size: m.Size, net: net}, nil
}

// Load reads a JSON model file.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load policy model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadModel, filepath.Base(path), err)
	}
	if m.Name == "" {
		m.Name = filepath.Base(path)
	}
	return FromModel(m)
}

// Model returns the network's current description.
func (n *Network) Model() Model {
	var hidden []int
	for _, l := range n.net.Layers[:len(n.net.Layers)-1] {
		hidden = append(hidden, len(l.Neurons))
	}
	return Model{
		Name:    n.name,
		Size:    n.size,
		Hidden:  hidden,
		Weights: n.net.Weights(),
	}
}

// Save writes the network as a JSON model file.
func (n *Network) Save(path string) error {
	data, err := json.Marshal(n.Model())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Name returns the model name.
func (n *Network) Name() string { return n.name }

// Size returns the board edge length the network was built for.
func (n *Network) Size() int { return n.size }

// Predict returns one probability per board point followed by the pass probability.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if len(input) != InputSize(n.size) {
		return nil, fmt.Errorf("policy input has %d values, want %d", len(input), InputSize(n.size))
	}
	return n.net.Predict(input), nil
}
