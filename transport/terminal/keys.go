package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/session"
)

// Diagonals sit on the digit keys, clockwise from up-left
var runeInputs = map[rune]session.Input{
	'1': session.Heading(engine.UpLeft),
	'2': session.Heading(engine.UpRight),
	'3': session.Heading(engine.DownRight),
	'4': session.Heading(engine.DownLeft),
	'g': {Kind: session.InputGrow},
	's': {Kind: session.InputPause},
	' ': {Kind: session.InputResume},
	'p': {Kind: session.InputTogglePause},
	'n': {Kind: session.InputStep},
	'q': {Kind: session.InputQuit},
}

var keyInputs = map[tcell.Key]session.Input{
	tcell.KeyUp:     session.Heading(engine.Up),
	tcell.KeyDown:   session.Heading(engine.Down),
	tcell.KeyLeft:   session.Heading(engine.Left),
	tcell.KeyRight:  session.Heading(engine.Right),
	tcell.KeyEscape: {Kind: session.InputQuit},
	tcell.KeyCtrlC:  {Kind: session.InputQuit},
}

// MapKey translates a key press into a player input
func MapKey(ev *tcell.EventKey) (session.Input, bool) {
	if ev.Key() == tcell.KeyRune {
		in, ok := runeInputs[unicode.ToLower(ev.Rune())]
		return in, ok
	}
	in, ok := keyInputs[ev.Key()]
	return in, ok
}

// HelpLine lists the key bindings for the bottom row
const HelpLine = "arrows/1-4 steer  g grow  s pause  space resume  p toggle  n step  q quit"
