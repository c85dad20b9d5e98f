package render

import (
	"math"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/vmath"
)

// Layout maps the viewBox onto the terminal area above the status line
// The viewBox is stretched to fill the area
type Layout struct {
	Cols, Rows int // Full screen size
	areaRows   int
	scaleX     float64 // viewBox units per cell
	scaleY     float64
}

// NewLayout builds the mapping for a screen of cols x rows
func NewLayout(cols, rows int) Layout {
	cols = max(cols, 1)
	rows = max(rows, 2)
	area := rows - constants.StatusRows
	return Layout{
		Cols:     cols,
		Rows:     rows,
		areaRows: area,
		scaleX:   constants.ViewBoxWidth / float64(cols),
		scaleY:   constants.ViewBoxHeight / float64(area),
	}
}

// AreaRows returns the rows the viewBox occupies
func (l Layout) AreaRows() int {
	return l.areaRows
}

// ToViewBox returns the viewBox point at the center of a cell
func (l Layout) ToViewBox(col, row int) vmath.Point {
	return vmath.P((float64(col)+0.5)*l.scaleX, (float64(row)+0.5)*l.scaleY)
}

// ToCell returns the cell containing a viewBox point
func (l Layout) ToCell(p vmath.Point) (col, row int) {
	return int(math.Floor(p.X / l.scaleX)), int(math.Floor(p.Y / l.scaleY))
}

// CellSize returns the viewBox extent of one cell
func (l Layout) CellSize() (w, h float64) {
	return l.scaleX, l.scaleY
}

// InArea reports whether a cell lies inside the viewBox area
func (l Layout) InArea(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= 0 && row < l.areaRows
}

// Percent implements tonearm.Viewport
func (l Layout) Percent(p vmath.Point) (x, y float64) {
	return p.X / constants.ViewBoxWidth * 100, p.Y / constants.ViewBoxHeight * 100
}
