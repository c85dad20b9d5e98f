// Package tonearm is the drag state machine, needle-drop sequencing and keyboard
// navigation of the turntable arm
package tonearm

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/state"
	"github.com/lixenwraith/turntable/tween"
	"github.com/lixenwraith/turntable/vmath"
)

// Accessible status texts
const (
	statusParked  = "Parked"
	statusPlaying = "Playing: %s"
	statusOver    = "Over: %s"
)

// Tonearm sequences needle drops and parks around the Machine
// Single writer: all methods run on the frame loop goroutine
type Tonearm struct {
	cfg      Config
	table    *groove.Table
	machine  *Machine
	anim     tween.Animator
	store    *state.Store
	out      events.Emitter
	viewport Viewport

	cursor      int // Keyboard groove index, -1 = none
	status      events.StatusPayload
	initialized bool
}

// New wires a tonearm; it is inert until Init
func New(table *groove.Table, store *state.Store, out events.Emitter, cfg Config) *Tonearm {
	return &Tonearm{
		cfg:     cfg,
		table:   table,
		machine: NewMachine(table, cfg, out),
		store:   store,
		out:     out,
		cursor:  -1,
		status:  events.StatusPayload{ValueText: statusParked},
	}
}

// Init performs the one-time setup against the drawing anchor
// On failure the tonearm stays inert and every operation is a no-op
func (t *Tonearm) Init(viewport Viewport) error {
	if t.initialized {
		return ErrAlreadyInitialized
	}
	if viewport == nil {
		return ErrNoAnchor
	}
	if t.table == nil || t.table.GrooveCount() == 0 {
		return ErrNoGrooves
	}

	t.viewport = viewport
	t.machine.SetAngle(t.cfg.ParkedAngle)
	t.machine.MarkParked()
	t.setStatus(statusParked, 0)
	t.initialized = true

	for i := 0; i < t.table.GrooveCount(); i++ {
		g, _ := t.table.Groove(i)
		log.Printf("tonearm: groove %s radius=%.0f angle=%.1f err=%.2f", g.ID, g.Radius, g.Angle, g.Error)
	}
	return nil
}

// Initialized reports whether Init succeeded
func (t *Tonearm) Initialized() bool {
	return t.initialized
}

// State returns a snapshot of the tonearm
func (t *Tonearm) State() State {
	return t.machine.State()
}

// Status returns the accessible value of the tonearm
func (t *Tonearm) Status() events.StatusPayload {
	return t.status
}

// Cursor returns the keyboard groove index, -1 when none
func (t *Tonearm) Cursor() int {
	return t.cursor
}

// Table returns the calibration the tonearm navigates
func (t *Tonearm) Table() *groove.Table {
	return t.table
}

// Segment returns the arm from pivot to needle tip at the live angle
func (t *Tonearm) Segment() (pivot, tip vmath.Point) {
	return t.cfg.Arm.Pivot, t.machine.Tip()
}

// Animating reports whether a tween owns the angle
func (t *Tonearm) Animating() bool {
	return t.anim.Active()
}

// Tick advances tweens; call once per frame
func (t *Tonearm) Tick(dt time.Duration) {
	t.machine.Advance()
	t.anim.Tick(dt)
}

// PointerDown interrupts any tween and starts dragging from the live angle
func (t *Tonearm) PointerDown(x float64) {
	if !t.initialized {
		return
	}
	if t.machine.State().Dragging {
		return
	}
	// Detach stale tweens before sampling the angle so nothing else writes it
	t.anim.Cancel()
	if !t.machine.PointerDown(x) {
		return
	}
	t.write(state.Set(state.KeyDragging, true))
}

// PointerMove follows the pointer; a scratch plays whenever a ring comes under the needle
func (t *Tonearm) PointerMove(x float64) {
	if !t.initialized {
		return
	}
	if t.machine.PointerMove(x) && t.machine.State().HighlightID != "" {
		t.emit(events.EventScratch, nil)
	}
}

// PointerUp drops onto the resolved ring or parks
func (t *Tonearm) PointerUp() {
	if !t.initialized {
		return
	}
	ring, found, dragging := t.machine.PointerUp()
	if !dragging {
		return
	}
	t.write(state.Set(state.KeyDragging, false))

	if found {
		t.DropNeedle(ring)
	} else {
		t.ReturnToParked()
	}
	t.machine.SetHighlight("")
}

// DropNeedle commits a drop onto ring and fans out the side effects
func (t *Tonearm) DropNeedle(ring groove.Ring) {
	if !t.initialized {
		return
	}
	t.machine.MarkDropped()

	base := t.machine.Angle()
	t.anim.Start(tween.NewSettle(base, t.cfg.SettleImpulse, t.cfg.FPS,
		t.cfg.SettleFrequency, t.cfg.SettleDamping, t.cfg.SettleMax, t.machine.SetAngle))

	t.emit(events.EventNeedleThump, nil)
	t.emit(events.EventPlatterDip, nil)

	if ring.Radius > 0 {
		t.emit(events.EventRippleRequest, &events.RipplePayload{Radius: ring.Radius})
	}

	x, y := t.viewport.Percent(t.table.Arm().TipAt(base))
	t.emit(events.EventDustRequest, &events.DustPayload{XPercent: x, YPercent: y})

	t.emit(events.EventActiveRingChanged, ringPayload(ring))
	t.write(state.Set(state.KeyCurrentSection, ring.ID))
	t.emit(events.EventContentLoad, ringPayload(ring))

	valueNow := t.status.ValueNow
	if ordinal := t.table.Registry().Ordinal(ring.ID); ordinal > 0 {
		valueNow = ordinal
	}
	t.setStatus(fmt.Sprintf(statusPlaying, ring.DisplayName()), valueNow)
}

// ReturnToParked swings the arm back to rest
func (t *Tonearm) ReturnToParked() {
	if !t.initialized {
		return
	}
	t.machine.MarkParked()
	t.emit(events.EventPlatterResume, nil)
	t.emit(events.EventActiveRingChanged, &events.RingPayload{})
	t.machine.SetHighlight("")

	t.anim.Start(&tween.Tween{
		From:     t.machine.Angle(),
		To:       t.cfg.ParkedAngle,
		Duration: t.cfg.ParkDuration,
		Ease:     tween.Power2InOut,
		OnUpdate: t.machine.SetAngle,
	})
	t.setStatus(statusParked, 0)
}

// MoveToGroove tweens to a ring's calibrated angle and drops on arrival
// Unknown ids are ignored; a pointer press before arrival cancels the drop
func (t *Tonearm) MoveToGroove(id string) {
	if !t.initialized {
		return
	}
	if t.machine.State().Dragging {
		return
	}
	target, ok := t.table.Lookup(id)
	if !ok {
		return
	}

	t.anim.Start(&tween.Tween{
		From:     t.machine.Angle(),
		To:       target.Angle,
		Duration: t.cfg.AutoMoveDuration,
		Ease:     tween.Power2InOut,
		OnUpdate: t.machine.SetAngle,
		OnComplete: func() {
			t.machine.SetAngle(target.Angle)
			t.DropNeedle(target.Ring)
		},
	})
}

func (t *Tonearm) setStatus(text string, valueNow int) {
	t.status = events.StatusPayload{ValueText: text, ValueNow: valueNow}
	t.emit(events.EventStatusChanged, &events.StatusPayload{ValueText: text, ValueNow: valueNow})
}

func (t *Tonearm) emit(et events.EventType, payload any) {
	t.machine.emit(et, payload)
}

func (t *Tonearm) write(changes ...state.Change) {
	if t.store != nil {
		t.store.Write(changes...)
	}
}

func ringPayload(r groove.Ring) *events.RingPayload {
	return &events.RingPayload{ID: r.ID, Label: r.DisplayName(), Radius: r.Radius}
}
