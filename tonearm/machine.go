package tonearm

import (
	"time"

	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/vmath"
)

// Phase is the drag lifecycle state
type Phase uint8

const (
	PhaseParked Phase = iota
	PhaseDragging
	PhaseDropped
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseDropped:
		return "dropped"
	default:
		return "parked"
	}
}

// State is a value snapshot of the tonearm
type State struct {
	Angle       float64
	Phase       Phase
	Dragging    bool
	Dropped     bool
	HighlightID string // Empty when no ring is highlighted
}

// Machine converts pointer motion into a clamped, snapped angle
// It owns the angle and highlight; every visible consequence leaves as an event
type Machine struct {
	table *groove.Table
	arm   groove.Arm
	ppd   float64
	out   events.Emitter

	angle          float64
	phase          Phase
	highlight      string
	dragStartX     float64
	dragStartAngle float64
	frame          int64
}

// NewMachine creates a parked machine
func NewMachine(table *groove.Table, cfg Config, out events.Emitter) *Machine {
	ppd := cfg.PixelsPerDegree
	if ppd <= 0 {
		ppd = 1
	}
	return &Machine{
		table: table,
		arm:   cfg.Arm,
		ppd:   ppd,
		out:   out,
		angle: cfg.ParkedAngle,
	}
}

// State returns a snapshot
func (m *Machine) State() State {
	return State{
		Angle:       m.angle,
		Phase:       m.phase,
		Dragging:    m.phase == PhaseDragging,
		Dropped:     m.phase == PhaseDropped,
		HighlightID: m.highlight,
	}
}

// Angle returns the live angle
func (m *Machine) Angle() float64 {
	return m.angle
}

// SetAngle writes the live angle, used by tweens
func (m *Machine) SetAngle(angle float64) {
	m.angle = angle
}

// Tip returns the needle tip at the live angle
func (m *Machine) Tip() vmath.Point {
	return m.arm.TipAt(m.angle)
}

// PointerDown starts a drag from the live angle
// A second concurrent press is rejected; returns false when ignored
func (m *Machine) PointerDown(x float64) bool {
	if m.phase == PhaseDragging {
		return false
	}
	if m.phase == PhaseDropped {
		m.emit(events.EventPlatterSlow, nil)
	}
	m.phase = PhaseDragging
	m.dragStartX = x
	m.dragStartAngle = m.angle
	return true
}

// PointerMove updates the angle from pointer travel; leftward motion swings toward the center
// Returns true when the highlighted ring changed
func (m *Machine) PointerMove(x float64) bool {
	if m.phase != PhaseDragging {
		return false
	}
	angle := m.dragStartAngle - (x-m.dragStartX)/m.ppd
	angle = vmath.Clamp(angle, m.arm.MinAngle, m.arm.MaxAngle)
	m.angle = m.table.Snap(angle)

	id := ""
	if ring, ok := m.table.Resolve(m.angle); ok {
		id = ring.ID
	}
	return m.SetHighlight(id)
}

// PointerUp ends the drag and resolves the ring under the needle
// dragging is false when no drag was active
func (m *Machine) PointerUp() (ring groove.Ring, found bool, dragging bool) {
	if m.phase != PhaseDragging {
		return groove.Ring{}, false, false
	}
	ring, found = m.table.Resolve(m.angle)
	return ring, found, true
}

// SetHighlight records the highlighted ring and notifies only on change
func (m *Machine) SetHighlight(id string) bool {
	if id == m.highlight {
		return false
	}
	m.highlight = id
	payload := &events.RingPayload{ID: id}
	if ring, ok := m.table.Registry().Lookup(id); ok {
		payload.Label = ring.Label
		payload.Radius = ring.Radius
	}
	m.emit(events.EventHighlightChanged, payload)
	return true
}

// MarkDropped commits the dropped phase
func (m *Machine) MarkDropped() {
	m.phase = PhaseDropped
}

// MarkParked commits the parked phase
func (m *Machine) MarkParked() {
	m.phase = PhaseParked
}

// Advance bumps the frame stamp carried by emitted events
func (m *Machine) Advance() {
	m.frame++
}

func (m *Machine) emit(t events.EventType, payload any) {
	if m.out == nil {
		return
	}
	m.out.Push(events.Event{Type: t, Payload: payload, Frame: m.frame, Timestamp: time.Now()})
}
