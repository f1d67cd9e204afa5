package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the setup form and the record browser.
var MenuColors = struct {
	Border      tcell.Color
	Accent      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),
	Accent:      tcell.PaletteColor(109),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
