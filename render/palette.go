package render

import (
	"github.com/lixenwraith/turntable/state"
)

// Palette is the set of colors for one theme
type Palette struct {
	Background RGB
	Platter    RGB
	Groove     RGB
	Label      RGB
	Highlight  RGB
	Active     RGB
	Arm        RGB
	Needle     RGB
	Ripple     RGB
	Dust       RGB
	Spindle    RGB
	StatusFg   RGB
	StatusBg   RGB
	DrawerFg   RGB
	DrawerBg   RGB
	Accent     RGB
}

// Theme palettes
var (
	DarkPalette = Palette{
		Background: RGB{15, 18, 21},
		Platter:    RGB{24, 26, 30},
		Groove:     RGB{60, 64, 72},
		Label:      RGB{150, 155, 165},
		Highlight:  RGB{245, 245, 245},
		Active:     RGB{29, 185, 84}, // Accent green
		Arm:        RGB{190, 192, 198},
		Needle:     RGB{255, 165, 0},
		Ripple:     RGB{29, 185, 84},
		Dust:       RGB{200, 200, 200},
		Spindle:    RGB{120, 124, 132},
		StatusFg:   RGB{0, 0, 0},
		StatusBg:   RGB{135, 206, 250},
		DrawerFg:   RGB{245, 245, 245},
		DrawerBg:   RGB{26, 27, 38},
		Accent:     RGB{29, 185, 84},
	}

	LightPalette = Palette{
		Background: RGB{238, 236, 230},
		Platter:    RGB{220, 218, 212},
		Groove:     RGB{170, 166, 158},
		Label:      RGB{90, 90, 96},
		Highlight:  RGB{20, 20, 24},
		Active:     RGB{20, 140, 64},
		Arm:        RGB{70, 72, 78},
		Needle:     RGB{200, 90, 0},
		Ripple:     RGB{20, 140, 64},
		Dust:       RGB{110, 106, 100},
		Spindle:    RGB{130, 128, 122},
		StatusFg:   RGB{255, 255, 255},
		StatusBg:   RGB{60, 100, 200},
		DrawerFg:   RGB{20, 20, 24},
		DrawerBg:   RGB{250, 248, 242},
		Accent:     RGB{20, 140, 64},
	}
)

// PaletteFor returns the palette of a theme name; unknown names get dark
func PaletteFor(theme string) Palette {
	if theme == state.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}
