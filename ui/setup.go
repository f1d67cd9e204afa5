package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tesuji-arena/engine"
)

var boardSizes = []int{9, 13, 19}

var territoryPolicies = []engine.TerritoryPolicy{engine.RequireBothPlayers, engine.CountAlways}

// ArenaSetupUI is the form for configuring a new arena game.
type ArenaSetupUI struct {
	form *tview.Form
	flex *tview.Flex
	cfg  engine.GameConfig
}

// NewArenaSetup creates the setup form, prefilled from base.
func NewArenaSetup(base engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *ArenaSetupUI {
	setup := &ArenaSetupUI{cfg: base}
	setup.cfg.Strategies = append([]engine.StrategyWeight(nil), base.Strategies...)

	form := tview.NewForm()

	sizeLabels := make([]string, len(boardSizes))
	sizeIndex := len(boardSizes) - 1
	for i, n := range boardSizes {
		sizeLabels[i] = strconv.Itoa(n) + "x" + strconv.Itoa(n)
		if n == base.BoardSize {
			sizeIndex = i
		}
	}
	form.AddDropDown("Board Size", sizeLabels, sizeIndex, func(option string, index int) {
		setup.cfg.BoardSize = boardSizes[index]
	})

	form.AddInputField("Policy Weight", formatWeight(weightOf(base, "policy")), 8, acceptNumber, func(text string) {
		setup.setWeight("policy", text)
	})
	form.AddInputField("Random Weight", formatWeight(weightOf(base, "random")), 8, acceptNumber, func(text string) {
		setup.setWeight("random", text)
	})
	form.AddInputField("Turn Delay (ms)", strconv.FormatInt(base.TurnDelay.Milliseconds(), 10), 8, tview.InputFieldInteger, func(text string) {
		if ms, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && ms >= 0 {
			setup.cfg.TurnDelay = time.Duration(ms) * time.Millisecond
		}
	})

	policyLabels := []string{"both players on board", "always"}
	policyIndex := 0
	if base.Territory == engine.CountAlways {
		policyIndex = 1
	}
	form.AddDropDown("Territory", policyLabels, policyIndex, func(option string, index int) {
		setup.cfg.Territory = territoryPolicies[index]
	})

	form.AddCheckbox("Filter Illegal", base.FilterIllegal, func(checked bool) {
		setup.cfg.FilterIllegal = checked
	})

	form.AddButton("Watch", func() {
		onStart(setup.Config())
	})
	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})
	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Arena Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	setup.form = form
	setup.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)
	return setup
}

// Config returns the configuration currently entered in the form.
func (s *ArenaSetupUI) Config() engine.GameConfig {
	cfg := s.cfg
	cfg.Strategies = append([]engine.StrategyWeight(nil), s.cfg.Strategies...)
	return cfg
}

// Form returns the flex container with form and help text.
func (s *ArenaSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *ArenaSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}

func (s *ArenaSetupUI) setWeight(kind, text string) {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || w < 0 {
		return
	}
	s.cfg.Strategies = withWeight(s.cfg.Strategies, kind, w)
}

// withWeight sets the weight of kind, adding an entry when it is missing.
func withWeight(ws []engine.StrategyWeight, kind string, w float64) []engine.StrategyWeight {
	for i := range ws {
		if ws[i].Kind == kind {
			ws[i].Weight = w
			return ws
		}
	}
	return append(ws, engine.StrategyWeight{Kind: kind, Weight: w})
}

func weightOf(cfg engine.GameConfig, kind string) float64 {
	for _, sw := range cfg.Strategies {
		if sw.Kind == kind {
			return sw.Weight
		}
	}
	return 0
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func acceptNumber(text string, lastChar rune) bool {
	return (lastChar >= '0' && lastChar <= '9') || lastChar == '.'
}
