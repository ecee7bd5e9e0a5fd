package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/input"
)

// UI is one terminal calculator bound to a screen.
type UI struct {
	screen  tcell.Screen
	state   *domain.State
	logger  *slog.Logger
	mouseUp bool
}

// New returns a UI drawing on screen and updating state. The screen must
// already be initialised; the caller owns Fini.
func New(screen tcell.Screen, state *domain.State, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UI{screen: screen, state: state, logger: logger, mouseUp: true}
}

// Run draws and handles events until the user quits.
func (ui *UI) Run() {
	ui.screen.EnableMouse()
	for {
		ui.draw()
		ui.screen.Show()

		switch ev := ui.screen.PollEvent().(type) {
		case nil:
			// Screen finalised.
			return
		case *tcell.EventResize:
			ui.screen.Sync()
		case *tcell.EventKey:
			if ui.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ui.handleMouse(ev)
		}
	}
}

// handleKey applies a key press and reports whether the user asked to quit.
func (ui *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		ui.apply(domain.EqualsEvent())
		return false
	case tcell.KeyEscape:
		ui.apply(domain.ClearEvent())
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return true
	case '.':
		ui.apply(domain.DigitEvent('.'))
	case '=':
		ui.apply(domain.EqualsEvent())
	case 'c', 'C':
		ui.apply(domain.ClearEvent())
	default:
		if e, ok := input.FromKey(string(r)); ok {
			ui.apply(e)
		}
	}
	return false
}

// handleMouse presses the button under a primary click.
func (ui *UI) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && ui.mouseUp
	ui.mouseUp = !down
	if !pressed {
		return
	}
	x, y := ev.Position()
	b, ok := buttonAt(x, y)
	if !ok {
		return
	}
	e, err := input.FromButton(b.Label)
	if err != nil {
		ui.logger.Warn("keypad button", "label", b.Label, "err", err)
		return
	}
	ui.apply(e)
}

func (ui *UI) apply(ev domain.Event) {
	if err := calc.Apply(ui.state, ev); err != nil {
		ui.logger.Warn("apply", "event", ev.String(), "err", err)
	}
}
