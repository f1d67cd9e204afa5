package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	gc := c.GameConfig()
	if gc.BoardSize != 19 || gc.Territory != engine.RequireBothPlayers || !gc.FilterIllegal {
		t.Errorf("GameConfig = %+v", gc)
	}
	if gc.TurnDelay != 200*time.Millisecond {
		t.Errorf("TurnDelay = %v, want 200ms", gc.TurnDelay)
	}
	if len(gc.Strategies) != 2 || gc.Strategies[0].Weight != 80 || gc.Strategies[1].Weight != 20 {
		t.Errorf("Strategies = %+v, want policy 80 random 20", gc.Strategies)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"control rune", func(c *Config) { c.Theme.Symbols.BlackStone = '\t' }},
		{"board too small", func(c *Config) { c.Arena.BoardSize = 1 }},
		{"board too large", func(c *Config) { c.Arena.BoardSize = 26 }},
		{"negative weight", func(c *Config) { c.Arena.RandomWeight = -1 }},
		{"zero weights", func(c *Config) { c.Arena.RandomWeight, c.Arena.PolicyWeight = 0, 0 }},
		{"negative delay", func(c *Config) { c.Arena.TurnDelayMs = -5 }},
		{"unknown territory policy", func(c *Config) { c.Arena.Territory = "sometimes" }},
		{"unparsable opening", func(c *Config) { c.Arena.Opening = []string{"D4", "Z"} }},
		{"opening off the board", func(c *Config) { c.Arena.BoardSize, c.Arena.Opening = 9, []string{"Q16"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.mutate(&c)
			var ic *InvalidConfig
			if err := c.Validate(); !errors.As(err, &ic) {
				t.Errorf("Validate() = %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestGameConfigOpening(t *testing.T) {
	c := DefaultConfig
	c.Arena.BoardSize = 9
	c.Arena.Opening = []string{"e5", "C3", "pass"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []types.Move{
		types.PlayAt(types.Vertex{X: 4, Y: 4}),
		types.PlayAt(types.Vertex{X: 2, Y: 6}),
		types.PassMove(),
	}
	got := c.GameConfig().Opening
	if len(got) != len(want) {
		t.Fatalf("Opening = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Opening[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"arena": {"board_size": 9, "random_weight": 1, "policy_weight": 0, "territory": "always"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Arena.BoardSize != 9 || c.Arena.Territory != "always" {
		t.Errorf("Arena = %+v", c.Arena)
	}
	// Unset fields keep their defaults.
	if c.Theme.Symbols.BlackStone != DefaultTheme.Symbols.BlackStone || c.Arena.MaxTurns != DefaultConfig.Arena.MaxTurns {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want not exist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"arena": `), 0644); err != nil {
		t.Fatal(err)
	}
	var ic *InvalidConfig
	if _, err := LoadFile(bad); !errors.As(err, &ic) {
		t.Errorf("LoadFile(bad) error = %v, want *InvalidConfig", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	c := DefaultConfig
	c.Arena.BoardSize = 13
	if err := saveCfgFile(path, &c, 0600); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(*loaded, c) {
		t.Errorf("loaded config differs from saved one")
	}
}
