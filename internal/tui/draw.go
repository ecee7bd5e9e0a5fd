package tui

import (
	"github.com/gdamore/tcell/v2"

	"calcpad/internal/input"
)

// Keypad geometry, in terminal cells.
const (
	originX = 1
	originY = 1
	cellW   = 6 // button width plus one column gap
	cellH   = 2 // button height plus one row gap
	padW    = input.LayoutCols*cellW - 1

	displayY = originY + 1
	keypadY  = originY + 4
)

var (
	styleDefault  = tcell.StyleDefault
	styleScreen   = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleDisplay  = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack).Bold(true)
	stylePending  = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorGray)
	styleDigit    = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleOperator = tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)
	styleClear    = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	styleEquals   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (ui *UI) draw() {
	s := ui.screen
	s.Clear()

	// Display panel: pending operator on the left, value right-aligned.
	for y := originY; y < keypadY-1; y++ {
		fill(s, originX, y, padW, styleScreen)
	}
	text := Fit(ui.state.Display, padW-4)
	drawText(s, originX+1, displayY, ui.state.Op.String(), stylePending)
	drawText(s, originX+padW-1-len([]rune(text)), displayY, text, styleDisplay)

	for _, b := range input.Layout {
		x, y, w, h := buttonRect(b)
		st := buttonStyle(b.Kind)
		for row := y; row < y+h; row++ {
			fill(s, x, row, w, st)
		}
		label := []rune(b.Label)
		drawText(s, x+(w-len(label))/2, y+(h-1)/2, b.Label, st)
	}

	helpY := keypadY + input.LayoutRows*cellH
	drawText(s, originX, helpY, "Enter = · Esc clear · q quit", styleHelp)
}

// Fit truncates text to width runes, ending in "…" when it does not fit.
func Fit(text string, width int) string {
	r := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return text
	}
	return string(r[:width-1]) + "…"
}

// buttonRect returns the screen rectangle covered by b.
func buttonRect(b input.Button) (x, y, w, h int) {
	x = originX + b.Col*cellW
	y = keypadY + b.Row*cellH
	w = b.ColSpan*cellW - 1
	h = b.RowSpan*cellH - 1
	return x, y, w, h
}

// buttonAt returns the button drawn at screen cell (x, y). Gaps between
// buttons belong to no button.
func buttonAt(x, y int) (input.Button, bool) {
	if x < originX || y < keypadY {
		return input.Button{}, false
	}
	b, ok := input.ButtonAt((y-keypadY)/cellH, (x-originX)/cellW)
	if !ok {
		return input.Button{}, false
	}
	bx, by, w, h := buttonRect(b)
	if x >= bx+w || y >= by+h {
		return input.Button{}, false
	}
	return b, true
}

func buttonStyle(kind string) tcell.Style {
	switch kind {
	case "operator":
		return styleOperator
	case "clear":
		return styleClear
	case "equals":
		return styleEquals
	case "digit":
		return styleDigit
	default:
		return styleDefault
	}
}

func fill(s tcell.Screen, x, y, w int, st tcell.Style) {
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, st)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}
