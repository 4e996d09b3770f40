package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/session"
)

// PausedLabel is appended to the status line while paused
const PausedLabel = "  PAUSED"

// Renderer draws frames onto a tcell screen. The board occupies the top
// rows; the reserved rows below hold the fence, status, message and help.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame and shows it
func (r *Renderer) Render(frame session.Frame) error {
	r.drawBoard(frame.Board, frame.Worm)

	rows, cols := frame.Board.Rows(), frame.Board.Cols()

	// Fence below the board
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, rows, GlyphBarrier, nil, StyleBarrier)
	}

	status := frame.Config.StatusLine(frame.Status)
	if frame.Paused {
		status += PausedLabel
	}
	r.drawLine(rows+1, cols, status, StyleStatus)
	r.drawLine(rows+2, cols, frame.Status.Message, StyleDefault)
	r.drawLine(rows+3, cols, HelpLine, StyleDefault)

	r.screen.Show()
	return nil
}

// drawBoard draws every cell, marking head and tail of the worm
func (r *Renderer) drawBoard(b *engine.Board, w *engine.Worm) {
	roles := make(map[engine.Position]segmentRole)
	segments := w.Segments()
	for i, p := range segments {
		switch {
		case i == 0:
			roles[p] = roleHead
		case i == len(segments)-1:
			roles[p] = roleTail
		default:
			roles[p] = roleBody
		}
	}

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			pos := engine.Position{Y: y, X: x}
			tile := b.ContentAt(pos)

			var ch rune
			var style tcell.Style
			if tile == engine.UsedByWorm {
				ch, style = wormGlyph(roles[pos])
			} else {
				ch, style = tileGlyph(tile)
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawLine writes text at row y, padding or cutting it to width
func (r *Renderer) drawLine(y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// DrawDialog draws a framed box with lines centred over the board area
func (r *Renderer) DrawDialog(rows, cols int, lines ...string) {
	inner := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > inner {
			inner = n
		}
	}
	width := inner + 4
	height := len(lines) + 2
	if width > cols {
		width = cols
	}

	left := (cols - width) / 2
	top := (rows - height) / 2
	if top < 0 {
		top = 0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := ' '
			switch {
			case (y == 0 || y == height-1) && (x == 0 || x == width-1):
				ch = '+'
			case y == 0 || y == height-1:
				ch = '-'
			case x == 0 || x == width-1:
				ch = '|'
			}
			r.screen.SetContent(left+x, top+y, ch, nil, StyleDialog)
		}
	}
	for i, line := range lines {
		for j, ch := range []rune(line) {
			if 2+j >= width-1 {
				break
			}
			r.screen.SetContent(left+2+j, top+1+i, ch, nil, StyleDialog)
		}
	}
	r.screen.Show()
}
