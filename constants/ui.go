package constants

// UI Layout Constants
const (
	// StatusRows is the number of rows below the viewBox area
	StatusRows = 1

	// DrawerTabWidth is the width of the collapsed drawer tab
	DrawerTabWidth = 24

	// DrawerScrollStep is the lines moved per scroll intent
	DrawerScrollStep = 3

	// LabelMinCols hides groove labels on narrower screens
	LabelMinCols = 60
)

// Glyphs
const (
	GlyphGroove    = '·'
	GlyphHighlight = '○'
	GlyphActive    = '●'
	GlyphArm       = '█'
	GlyphNeedle    = '▼'
	GlyphPivot     = '◉'
	GlyphSpindle   = '◆'
	GlyphRipple    = '∘'
	GlyphDust      = '˙'
	GlyphMote      = '.'
	GlyphPlatter   = ' '
	GlyphCardEdge  = '─'
)

// SpindleMarkRadius places the rotating label mark around the spindle
const SpindleMarkRadius = 60.0
