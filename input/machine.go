package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/vmath"
)

// ArmLocator reports the live tonearm segment in viewBox units
type ArmLocator interface {
	Segment() (pivot, tip vmath.Point)
}

// Mapper converts a terminal cell to viewBox units
type Mapper interface {
	ToViewBox(col, row int) vmath.Point
}

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	state    InputState
	keyTable *KeyTable
	arm      ArmLocator
	mapper   Mapper

	grabDistance float64
	buttons      tcell.ButtonMask // Buttons of the previous mouse event
}

// NewMachine creates a new input machine
func NewMachine(arm ArmLocator, mapper Mapper) *Machine {
	return &Machine{
		mode:         ModeTurntable,
		state:        StateIdle,
		keyTable:     DefaultKeyTable(),
		arm:          arm,
		mapper:       mapper,
		grabDistance: constants.ArmGrabDistance,
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the parser's mode context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// State returns the pointer grab state
func (m *Machine) State() InputState {
	return m.state
}

// SetKeyTable replaces the bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// Reset drops a pending grab without emitting a release
func (m *Machine) Reset() {
	m.state = StateIdle
	m.buttons = tcell.ButtonNone
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if it, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return &Intent{Type: it}
		}
		return nil
	}

	if m.mode == ModeDrawer {
		switch ev.Key() {
		case tcell.KeyUp:
			return &Intent{Type: IntentScrollDrawer, ScrollDir: ScrollUp}
		case tcell.KeyDown:
			return &Intent{Type: IntentScrollDrawer, ScrollDir: ScrollDown}
		}
	}

	it, ok := m.keyTable.SpecialKeys[ev.Key()]
	if !ok {
		return nil
	}
	intent := &Intent{Type: it}
	if it == IntentScrollDrawer {
		intent.ScrollDir = ScrollDown
		if ev.Key() == tcell.KeyPgUp {
			intent.ScrollDir = ScrollUp
		}
	}
	return intent
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	btn := ev.Buttons()
	prev := m.buttons
	m.buttons = btn

	col, row := ev.Position()

	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentScrollDrawer, ScrollDir: ScrollUp}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentScrollDrawer, ScrollDir: ScrollDown}

	case btn&tcell.Button1 != 0:
		p := m.mapper.ToViewBox(col, row)
		if m.state == StateGrabbed {
			return &Intent{Type: IntentPointerMove, Point: p}
		}
		// A press that started off the arm never becomes a drag
		if prev&tcell.Button1 != 0 {
			return nil
		}
		if !m.onArm(p) {
			return nil
		}
		m.state = StateGrabbed
		return &Intent{Type: IntentPointerDown, Point: p}

	case m.state == StateGrabbed:
		m.state = StateIdle
		return &Intent{Type: IntentPointerUp, Point: m.mapper.ToViewBox(col, row)}
	}
	return nil
}

func (m *Machine) onArm(p vmath.Point) bool {
	if m.arm == nil {
		return false
	}
	pivot, tip := m.arm.Segment()
	return vmath.DistanceToSegment(p, pivot, tip) <= m.grabDistance
}
