package input

import (
	"github.com/lixenwraith/turntable/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Tonearm pointer
	IntentPointerDown // Button-1 press on the arm
	IntentPointerMove // Motion with button held
	IntentPointerUp   // Release after a grab

	// Tonearm keyboard
	IntentNextGroove     // Left/Up
	IntentPreviousGroove // Right/Down
	IntentActivate       // Enter/Space
	IntentEscape         // Esc: park and close drawer

	// Controls
	IntentToggleSound    // s
	IntentToggleTheme    // t
	IntentToggleAutoPlay // a
	IntentFullMode       // f: export the current section

	// Drawer
	IntentOpenDrawer   // o
	IntentCloseDrawer  // c
	IntentScrollDrawer // PgUp/PgDn, wheel
	IntentPreviousCard // [
	IntentNextCard     // ]
)

var intentNames = map[IntentType]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentResize:         "resize",
	IntentPointerDown:    "pointer_down",
	IntentPointerMove:    "pointer_move",
	IntentPointerUp:      "pointer_up",
	IntentNextGroove:     "next_groove",
	IntentPreviousGroove: "previous_groove",
	IntentActivate:       "activate",
	IntentEscape:         "escape",
	IntentToggleSound:    "toggle_sound",
	IntentToggleTheme:    "toggle_theme",
	IntentToggleAutoPlay: "toggle_autoplay",
	IntentFullMode:       "full_mode",
	IntentOpenDrawer:     "open_drawer",
	IntentCloseDrawer:    "close_drawer",
	IntentScrollDrawer:   "scroll_drawer",
	IntentPreviousCard:   "previous_card",
	IntentNextCard:       "next_card",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// ScrollDir is the drawer scroll direction
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct; Point is in viewBox units for pointer intents
type Intent struct {
	Type      IntentType
	Point     vmath.Point
	ScrollDir ScrollDir
}
