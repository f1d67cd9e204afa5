package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"tesuji-arena/engine"
	"tesuji-arena/engine/gtp"
	"tesuji-arena/types"
)

var (
	cfgFile = "tesuji-arena/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	LineColor         int `json:"line"`
	LastPlayedColorBG int `json:"last_played_bg"`
	LibertyBlack      int `json:"liberty_black"`
	LibertyWhite      int `json:"liberty_white"`
	LibertyShared     int `json:"liberty_shared"`
	TerritoryBlack    int `json:"territory_black"`
	TerritoryWhite    int `json:"territory_white"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	LastPlayed  rune `json:"last_played"`
	Liberty     rune `json:"liberty"`
	Territory   rune `json:"territory"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// ArenaConfig holds the self-play settings.
type ArenaConfig struct {
	BoardSize     int     `json:"board_size"`
	TurnDelayMs   int     `json:"turn_delay_ms"`
	TurnTimeoutMs int     `json:"turn_timeout_ms"`
	MaxTurns      int     `json:"max_turns"`
	PolicyWeight  float64 `json:"policy_weight"`
	RandomWeight  float64 `json:"random_weight"`
	ModelPath     string  `json:"model_path"`
	Territory     string  `json:"territory"`
	FilterIllegal bool     `json:"filter_illegal"`
	Seed          int64    `json:"seed"`
	Opening       []string `json:"opening,omitempty"` // GTP vertices or "pass"
}

type Config struct {
	Theme Theme       `json:"theme"`
	Arena ArenaConfig `json:"arena"`
}

// InitConfig loads the user's config file from the XDG config directories over the defaults.
// A missing file is not an error.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile loads the config file at path over the defaults.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.Liberty, c.Theme.Symbols.Territory} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	a := c.Arena
	if a.BoardSize < 2 || a.BoardSize > 25 {
		return &InvalidConfig{fmt.Sprintf("board size %d is outside 2-25", a.BoardSize)}
	}
	if a.PolicyWeight < 0 || a.RandomWeight < 0 {
		return &InvalidConfig{"strategy weights must not be negative"}
	}
	if a.PolicyWeight+a.RandomWeight == 0 {
		return &InvalidConfig{"at least one strategy weight must be positive"}
	}
	if a.TurnDelayMs < 0 || a.TurnTimeoutMs < 0 || a.MaxTurns < 0 {
		return &InvalidConfig{"delays and turn limits must not be negative"}
	}
	switch engine.TerritoryPolicy(a.Territory) {
	case engine.CountAlways, engine.RequireBothPlayers:
	default:
		return &InvalidConfig{fmt.Sprintf("territory policy %q is not %q or %q", a.Territory, engine.CountAlways, engine.RequireBothPlayers)}
	}
	if _, err := a.openingMoves(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

func (a ArenaConfig) openingMoves() ([]types.Move, error) {
	var moves []types.Move
	for i, s := range a.Opening {
		m, err := gtp.ParseMove(s, a.BoardSize)
		if err != nil {
			return nil, fmt.Errorf("opening move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// GameConfig converts the arena settings to a game configuration.
// Opening moves that fail to parse are dropped; Validate reports them.
func (c *Config) GameConfig() engine.GameConfig {
	a := c.Arena
	opening, _ := a.openingMoves()
	return engine.GameConfig{
		BoardSize:   a.BoardSize,
		TurnDelay:   time.Duration(a.TurnDelayMs) * time.Millisecond,
		TurnTimeout: time.Duration(a.TurnTimeoutMs) * time.Millisecond,
		MaxTurns:    a.MaxTurns,
		Strategies: []engine.StrategyWeight{
			{Kind: "policy", Weight: a.PolicyWeight},
			{Kind: "random", Weight: a.RandomWeight},
		},
		ModelPath:     a.ModelPath,
		Territory:     engine.TerritoryPolicy(a.Territory),
		FilterIllegal: a.FilterIllegal,
		Seed:          a.Seed,
		Opening:       opening,
	}
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filepath.Base(filePath), err)}
	}
	return nil
}
