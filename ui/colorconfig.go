package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tesuji-arena/config"
	"tesuji-arena/engine/rules"
	"tesuji-arena/game"
	"tesuji-arena/types"
)

// ColorConfigUI picks the board and line colours with a live preview of an analysed position.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *BoardView
	cfg       *config.Config
	draft     config.Config
	onDone    func(error)

	editingLine bool
}

type namedColor struct {
	code int
	name string
}

// Common board colors to choose from (warm wood-like tones)
var boardColors = []namedColor{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{220, "Bright Yellow"},
	{214, "Orange Gold"},
	{208, "Dark Orange"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{136, "Dark Brown"},
	{94, "Saddle Brown"},
	{252, "Light Gray"},
	{250, "Gray"},
	{248, "Medium Gray"},
	{244, "Dark Gray"},
	{188, "Light Beige"},
	{181, "Dusty Rose"},
	{223, "Peach"},
	{216, "Salmon"},
}

// Line colors (darker tones that contrast with board)
var lineColors = []namedColor{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{232, "Black"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{244, "Medium Gray"},
	{16, "True Black"},
}

// previewPosition is a 7x7 position showing both colours, shared liberties and territory.
var previewPosition = [][]types.Sign{
	{0, 0, 1, -1, 0, 0, 0},
	{0, 0, 1, -1, 0, 0, 0},
	{1, 1, 1, -1, 0, 0, 0},
	{0, 0, 0, -1, -1, -1, -1},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, -1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// NewColorConfig creates the colour screen. onDone receives the error of saving the chosen
// colours, or nil.
func NewColorConfig(cfg *config.Config, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		draft:  *cfg,
		onDone: onDone,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.choose(index)
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.choose(index)
		if cc.editingLine {
			cc.ToggleMode()
			return
		}
		cc.cfg.Theme.Colors = cc.draft.Theme.Colors
		cc.onDone(cc.cfg.Save())
	})

	cc.preview = NewBoardView(&cc.draft, cfg.GameConfig().Territory)
	cc.preview.Box.SetBorder(true)
	cc.preview.Box.SetTitle(" Board Preview ")
	board, err := rules.FromSigns(previewPosition)
	if err == nil {
		cc.preview.Show(&game.Frame{Board: board})
		cc.preview.Toggle(OverlayLiberties)
		cc.preview.Toggle(OverlayTerritory)
	}

	cc.populateColorList()

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview.Box, 0, 1, false)
	return cc
}

// choose previews entry index of the current list.
func (cc *ColorConfigUI) choose(index int) {
	colors := &cc.draft.Theme.Colors
	if cc.editingLine {
		if index >= 0 && index < len(lineColors) {
			colors.LineColor = lineColors[index].code
		}
	} else if index >= 0 && index < len(boardColors) {
		colors.BoardColor = boardColors[index].code
		colors.BoardColorAlt = boardColors[index].code
	}
	cc.preview.SetConfig(&cc.draft)
}

// populateColorList fills the list for the colour being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	list, current := boardColors, cc.draft.Theme.Colors.BoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to line) ")
	if cc.editingLine {
		list, current = lineColors, cc.draft.Theme.Colors.LineColor
		cc.colorList.SetTitle(" Select Line Color (Tab: switch to board) ")
	}
	for i, c := range list {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range list {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}

// Reset drops unsaved choices.
func (cc *ColorConfigUI) Reset() {
	cc.draft = *cc.cfg
	cc.editingLine = false
	cc.preview.SetConfig(&cc.draft)
	cc.populateColorList()
}
