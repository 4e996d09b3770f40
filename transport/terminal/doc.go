// Package terminal is the text-terminal shell of the Worm game, built on tcell.
//
// The board is drawn cell by cell in the top rows of the screen; the four
// reserved rows below hold a fence, the status line, the latest message and
// a key help line. Free cells are blank, barriers '#', food shows its growth
// bonus ('2', '4', '6'), and the worm is drawn as a red 'X' head, '0' body
// segments and an 'X' tail, all on a white background.
//
// Keys:
//
//	arrows      steer up, down, left, right
//	1 2 3 4     steer up-left, up-right, down-right, down-left
//	g           grow by three segments
//	s / space   pause / resume
//	p           toggle pause
//	n           single step while paused
//	q Esc ^C    quit
//
// Terminal implements service.InputSource and service.Renderer.
package terminal
