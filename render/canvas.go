package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawable surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// put writes one cell, dropping writes outside the canvas
func put(c Canvas, x, y int, r rune, style tcell.Style) {
	w, h := c.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c.SetContent(x, y, r, nil, style)
}

// text writes s from x, advancing by display width; returns the next column
func text(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		put(c, x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// fillRow paints cells [x0, x1) of row y with a blank in style
func fillRow(c Canvas, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		put(c, x, y, ' ', style)
	}
}
