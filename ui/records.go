package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tesuji-arena/engine"
	"tesuji-arena/sgf"
	"tesuji-arena/types"
)

// RecordBrowser lists the SGF records of a directory with a preview of the selected final position.
type RecordBrowser struct {
	flex     *tview.Flex
	list     *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	records  []sgf.GameInfo
	boards   map[string]engine.Board // final positions by file path
	selected int
	onOpen   func(path string)
	onDone   func()
}

// NewRecordBrowser lists dir. onOpen is called with the path of a record chosen for review.
func NewRecordBrowser(dir string, onOpen func(path string), onDone func()) *RecordBrowser {
	rb := &RecordBrowser{
		dir:    dir,
		onOpen: onOpen,
		onDone: onDone,
		boards: make(map[string]engine.Board),
	}

	rb.list = tview.NewList()
	rb.list.SetBorder(true)
	rb.list.SetTitle(" Records ")
	rb.list.SetBorderColor(MenuColors.Border)
	rb.list.ShowSecondaryText(false)
	rb.list.SetHighlightFullLine(true)
	rb.list.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	rb.list.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))
	rb.list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		rb.selected = index
	})
	rb.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		rb.selected = index
		rb.open()
	})
	rb.list.SetInputCapture(rb.handleInput)

	rb.preview = tview.NewBox()
	rb.preview.SetBorder(true)
	rb.preview.SetTitle(" Preview ")
	rb.preview.SetBorderColor(MenuColors.Border)
	rb.preview.SetDrawFunc(rb.drawPreview)

	rb.hint = tview.NewTextView()
	rb.hint.SetDynamicColors(true)
	rb.hint.SetText("  [dimgray]enter[-] review  [dimgray]r[-] reload  [dimgray]q[-] back")

	top := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(rb.list, 38, 0, true).
		AddItem(rb.preview, 0, 1, false)

	rb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, true).
		AddItem(rb.hint, 1, 0, false)

	rb.Refresh()
	return rb
}

// Flex returns the browser layout.
func (rb *RecordBrowser) Flex() *tview.Flex {
	return rb.flex
}

// Records returns the listed records.
func (rb *RecordBrowser) Records() []sgf.GameInfo {
	return rb.records
}

// Selected returns the highlighted record.
func (rb *RecordBrowser) Selected() (sgf.GameInfo, bool) {
	if rb.selected < 0 || rb.selected >= len(rb.records) {
		return sgf.GameInfo{}, false
	}
	return rb.records[rb.selected], true
}

// Refresh rescans the directory.
func (rb *RecordBrowser) Refresh() {
	rb.list.Clear()
	rb.boards = make(map[string]engine.Board)
	rb.records = nil
	rb.selected = 0

	records, err := sgf.ListRecords(rb.dir)
	if err != nil {
		rb.list.AddItem("[red]"+tview.Escape(err.Error())+"[-]", "", 0, nil)
		return
	}
	if len(records) == 0 {
		rb.list.AddItem("[dimgray]No records found[-]", "", 0, nil)
		return
	}
	rb.records = records
	for _, r := range records {
		result := r.Result
		if result == "" || result == "?" {
			result = "..."
		}
		label := fmt.Sprintf("%-16.16s %dx%d  %s", r.FileName, r.BoardSize, r.BoardSize, result)
		rb.list.AddItem(tview.Escape(label), "", 0, nil)
	}
}

func (rb *RecordBrowser) open() {
	r, ok := rb.Selected()
	if !ok || rb.onOpen == nil {
		return
	}
	rb.onOpen(r.FilePath)
}

func (rb *RecordBrowser) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if rb.onDone != nil {
			rb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if rb.onDone != nil {
				rb.onDone()
			}
			return nil
		case 'r':
			rb.Refresh()
			return nil
		}
	}
	return event
}

// finalBoard replays the record at path once and caches the result. Unreadable records yield nil.
func (rb *RecordBrowser) finalBoard(path string) engine.Board {
	if b, ok := rb.boards[path]; ok {
		return b
	}
	b, _, err := sgf.ReplayToEnd(path)
	if err != nil {
		b = nil
	}
	rb.boards[path] = b
	return b
}

func (rb *RecordBrowser) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	r, ok := rb.Selected()
	if !ok {
		return x, y, width, height
	}
	startX, startY := x+2, y+1
	board := rb.finalBoard(r.FilePath)
	if board == nil {
		drawText(screen, startX, startY, "cannot replay "+r.FileName, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return x, y, width, height
	}
	if width < board.Width()*2+4 || height < board.Height()+6 {
		return x, y, width, height
	}

	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	for by := 0; by < board.Height(); by++ {
		for bx := 0; bx < board.Width(); bx++ {
			ch, style := '·', emptyStyle
			switch board.Get(types.Vertex{X: bx, Y: by}) {
			case types.Black.Sign():
				ch, style = '●', blackStyle
			case types.White.Sign():
				ch, style = '○', whiteStyle
			}
			screen.SetContent(startX+bx*2, startY+by, ch, nil, style)
		}
	}

	infoY := startY + board.Height() + 1
	infoStyle := tcell.StyleDefault.Foreground(MenuColors.Label)
	dimStyle := tcell.StyleDefault.Foreground(MenuColors.Hint)
	drawText(screen, startX, infoY, fmt.Sprintf("%dx%d | %d moves | komi %.1f", r.BoardSize, r.BoardSize, r.MoveCount, r.Komi), infoStyle)
	infoY++
	drawText(screen, startX, infoY, "B: "+r.PlayerBlack, dimStyle)
	infoY++
	drawText(screen, startX, infoY, "W: "+r.PlayerWhite, dimStyle)
	infoY++
	result := r.Result
	if result == "" || result == "?" {
		result = "Unfinished"
	}
	drawText(screen, startX, infoY, "Result: "+result, tcell.StyleDefault.Foreground(MenuColors.Accent))
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("Captures: B %d  W %d", board.Captures(types.Black), board.Captures(types.White)), dimStyle)
	return x, y, width, height
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
