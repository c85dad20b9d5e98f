package groove

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/vmath"
)

var (
	ErrDuplicateRing = errors.New("duplicate ring id")
	ErrInvalidRadius = errors.New("ring radius must be positive")
)

// Registry is the static ring set with point-to-ring hit testing
// Content grooves are always checked before easter eggs, each in registration order
type Registry struct {
	center    vmath.Point
	tolerance float64
	grooves   []Ring
	eggs      []Ring
	all       []Ring
	byID      map[string]int
}

// NewRegistry validates and freezes the ring set
func NewRegistry(center vmath.Point, tolerance float64, grooves, eggs []Ring) (*Registry, error) {
	r := &Registry{
		center:    center,
		tolerance: tolerance,
		byID:      make(map[string]int, len(grooves)+len(eggs)),
	}

	for _, ring := range grooves {
		ring.Kind = KindContent
		r.grooves = append(r.grooves, ring)
	}
	for _, ring := range eggs {
		ring.Kind = KindEasterEgg
		r.eggs = append(r.eggs, ring)
	}

	r.all = make([]Ring, 0, len(r.grooves)+len(r.eggs))
	r.all = append(r.all, r.grooves...)
	r.all = append(r.all, r.eggs...)

	for i, ring := range r.all {
		if ring.Radius <= 0 || math.IsNaN(ring.Radius) {
			return nil, fmt.Errorf("ring %q: %w", ring.ID, ErrInvalidRadius)
		}
		if _, exists := r.byID[ring.ID]; exists {
			return nil, fmt.Errorf("ring %q: %w", ring.ID, ErrDuplicateRing)
		}
		r.byID[ring.ID] = i
	}

	return r, nil
}

// DefaultRegistry builds the stock turntable rings around the platter center
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		vmath.P(constants.PlatterCenterX, constants.PlatterCenterY),
		constants.GrooveTolerance,
		DefaultGrooves(),
		DefaultEasterEggs(),
	)
	if err != nil {
		// Stock data is static; failure is a programming error
		panic(err)
	}
	return r
}

// Center returns the platter center
func (r *Registry) Center() vmath.Point {
	return r.center
}

// Tolerance returns the hit-test tolerance
func (r *Registry) Tolerance() float64 {
	return r.tolerance
}

// FindRingAtDistance returns the first ring whose radius is within tolerance of d
func (r *Registry) FindRingAtDistance(d float64) (Ring, bool) {
	for _, ring := range r.all {
		if math.Abs(d-ring.Radius) <= r.tolerance {
			return ring, true
		}
	}
	return Ring{}, false
}

// FindRingAtPoint hit-tests a viewBox point against the ring set
func (r *Registry) FindRingAtPoint(p vmath.Point) (Ring, bool) {
	return r.FindRingAtDistance(vmath.Distance(p, r.center))
}

// Lookup returns a ring by id
func (r *Registry) Lookup(id string) (Ring, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Ring{}, false
	}
	return r.all[i], true
}

// Ordinal returns the 1-based position of a content groove, 0 for hidden or unknown rings
func (r *Registry) Ordinal(id string) int {
	for i, ring := range r.grooves {
		if ring.ID == id {
			return i + 1
		}
	}
	return 0
}

// Grooves returns a copy of the content grooves
func (r *Registry) Grooves() []Ring {
	return append([]Ring(nil), r.grooves...)
}

// Rings returns a copy of all rings in hit-test order
func (r *Registry) Rings() []Ring {
	return append([]Ring(nil), r.all...)
}
