package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentNextGroove,
			tcell.KeyUp:     IntentNextGroove,
			tcell.KeyRight:  IntentPreviousGroove,
			tcell.KeyDown:   IntentPreviousGroove,
			tcell.KeyEnter:  IntentActivate,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyPgUp:   IntentScrollDrawer,
			tcell.KeyPgDn:   IntentScrollDrawer,
		},
		Runes: map[rune]IntentType{
			' ': IntentActivate,
			'q': IntentQuit,
			's': IntentToggleSound,
			't': IntentToggleTheme,
			'a': IntentToggleAutoPlay,
			'f': IntentFullMode,
			'o': IntentOpenDrawer,
			'c': IntentCloseDrawer,
			'[': IntentPreviousCard,
			']': IntentNextCard,
		},
	}
}

// Clone returns a deep copy for per-session overrides
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(kt.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
