package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/worm-game/game/engine"
)

// Glyphs drawn for board cells
const (
	GlyphFree    = ' '
	GlyphBarrier = '#'
	GlyphFood1   = '2'
	GlyphFood2   = '4'
	GlyphFood3   = '6'
	GlyphHead    = 'X'
	GlyphBody    = '0'
	GlyphTail    = 'X'
)

// All colors sit on a white background
var (
	StyleDefault = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	StyleBarrier = StyleDefault.Foreground(tcell.ColorMaroon)
	StyleFood1   = StyleDefault.Foreground(tcell.ColorNavy)
	StyleFood2   = StyleDefault.Foreground(tcell.ColorPurple)
	StyleFood3   = StyleDefault.Foreground(tcell.ColorTeal)
	StyleWorm    = StyleDefault.Foreground(tcell.ColorGreen)
	StyleHead    = StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)
	StyleStatus  = StyleDefault.Bold(true)
	StyleDialog  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// segmentRole tells the renderer which part of the worm a cell holds
type segmentRole int

const (
	roleNone segmentRole = iota
	roleHead
	roleBody
	roleTail
)

// tileGlyph returns the glyph and style of a non-worm tile
func tileGlyph(tile engine.Tile) (rune, tcell.Style) {
	switch tile {
	case engine.Barrier:
		return GlyphBarrier, StyleBarrier
	case engine.Food1:
		return GlyphFood1, StyleFood1
	case engine.Food2:
		return GlyphFood2, StyleFood2
	case engine.Food3:
		return GlyphFood3, StyleFood3
	}
	return GlyphFree, StyleDefault
}

// wormGlyph returns the glyph and style of a worm segment
func wormGlyph(role segmentRole) (rune, tcell.Style) {
	switch role {
	case roleHead:
		return GlyphHead, StyleHead
	case roleTail:
		return GlyphTail, StyleWorm
	}
	return GlyphBody, StyleWorm
}
