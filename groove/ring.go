// Package groove holds the static ring set and the angle calibration built from it
package groove

import (
	"strings"
)

// Kind separates labelled content grooves from hidden rings
type Kind uint8

const (
	KindContent Kind = iota
	KindEasterEgg
)

// Ring is an immutable circular target at a fixed radius from the platter center
type Ring struct {
	ID     string
	Label  string // Empty for hidden rings
	Radius float64
	Kind   Kind
}

// DisplayName returns the label, falling back to the upper-cased id
func (r Ring) DisplayName() string {
	if r.Label != "" {
		return r.Label
	}
	return strings.ToUpper(r.ID)
}

// Hidden reports whether the ring is an easter egg
func (r Ring) Hidden() bool {
	return r.Kind == KindEasterEgg
}

// DefaultGrooves are the content grooves in registration order
func DefaultGrooves() []Ring {
	return []Ring{
		{ID: "intro", Label: "INTRO", Radius: 255, Kind: KindContent},
		{ID: "cv", Label: "CV", Radius: 210, Kind: KindContent},
		{ID: "portfolio", Label: "PORTFOLIO", Radius: 165, Kind: KindContent},
	}
}

// DefaultEasterEggs are the hidden rings, checked after content grooves
func DefaultEasterEggs() []Ring {
	return []Ring{
		{ID: "easter-egg-1", Radius: 276, Kind: KindEasterEgg},
		{ID: "easter-egg-2", Radius: 45, Kind: KindEasterEgg},
	}
}
