package events

import (
	"time"
)

// EventType represents the type of tonearm event
type EventType int

const (
	// EventHighlightChanged signals the ring under the needle changed while dragging or navigating
	// Trigger: Machine on resolved-ring change (never on an unchanged move)
	// Consumer: Scene, SoundManager | Payload: *RingPayload (empty ID = none)
	EventHighlightChanged EventType = iota + 1

	// EventActiveRingChanged marks the ring the needle is playing, superseding the previous one
	// Trigger: Tonearm drop / park
	// Consumer: Scene | Payload: *RingPayload (empty ID = none)
	EventActiveRingChanged

	// EventNeedleThump requests the needle-drop sound
	// Trigger: Tonearm drop
	// Consumer: SoundManager | Payload: nil
	EventNeedleThump

	// EventScratch requests a short scratch while the needle crosses a ring
	// Trigger: Tonearm highlight change during drag
	// Consumer: SoundManager | Payload: nil
	EventScratch

	// EventPlatterDip requests a brief slow-then-resume of the platter
	// Trigger: Tonearm drop
	// Consumer: Platter | Payload: nil
	EventPlatterDip

	// EventPlatterSlow requests the lifted-arm platter speed
	// Trigger: pointer down on a dropped arm
	// Consumer: Platter | Payload: nil
	EventPlatterSlow

	// EventPlatterResume requests normal platter speed
	// Trigger: Tonearm park
	// Consumer: Platter | Payload: nil
	EventPlatterResume

	// EventRippleRequest requests a ripple at a ring radius
	// Trigger: Tonearm drop
	// Consumer: Effects | Payload: *RipplePayload
	EventRippleRequest

	// EventDustRequest requests a dust puff at a viewport-relative position
	// Trigger: Tonearm drop
	// Consumer: Effects | Payload: *DustPayload
	EventDustRequest

	// EventContentLoad requests content for a ring id; the tonearm does not wait
	// Trigger: Tonearm drop
	// Consumer: content.Drawer | Payload: *RingPayload
	EventContentLoad

	// EventStatusChanged carries the accessible description of the tonearm
	// Trigger: every angle-resolving transition
	// Consumer: Scene (status line) | Payload: *StatusPayload
	EventStatusChanged

	eventTypeCount
)

// Event is a single queued notification
type Event struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}

// Emitter accepts events; EventQueue is the production implementation
type Emitter interface {
	Push(event Event)
}
