package config

import "tesuji-arena/engine"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawStoneBackground:      false,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		UseGridLines:             true,
		Colors: ConfigColors{
			BoardColor:        180,
			BoardColorAlt:     180,
			BlackColor:        232,
			BlackColorAlt:     232,
			WhiteColor:        255,
			WhiteColorAlt:     255,
			LineColor:         94,
			LastPlayedColorBG: 2,
			LibertyBlack:      17,
			LibertyWhite:      231,
			LibertyShared:     201,
			TerritoryBlack:    60,
			TerritoryWhite:    188,
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: '┼',
			LastPlayed:  '┼',
			Liberty:     '·',
			Territory:   '▪',
		},
	}

	defaults := engine.DefaultConfig()
	DefaultConfig = Config{
		Theme: DefaultTheme,
		Arena: ArenaConfig{
			BoardSize:     defaults.BoardSize,
			TurnDelayMs:   int(defaults.TurnDelay.Milliseconds()),
			TurnTimeoutMs: 2000,
			MaxTurns:      defaults.MaxTurns,
			PolicyWeight:  80,
			RandomWeight:  20,
			Territory:     string(defaults.Territory),
			FilterIllegal: defaults.FilterIllegal,
		},
	}
}
