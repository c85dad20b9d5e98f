package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS matches FrameUpdateInterval, used by spring integration
	DefaultFPS = 60
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// ViewBox is the abstract coordinate space the whole turntable is laid out in
const (
	ViewBoxWidth  = 1000.0
	ViewBoxHeight = 700.0
)

// Platter geometry (viewBox units)
const (
	PlatterCenterX = 400.0
	PlatterCenterY = 350.0
	PlatterRadius  = 300.0

	// GrooveTolerance is the maximum |distance - radius| for a ring hit
	GrooveTolerance = 15.0
)

// Platter spin
const (
	// PlatterNormalRevolution is one revolution with the needle down or parked
	PlatterNormalRevolution = 12 * time.Second

	// PlatterSlowRevolution is one revolution while the tonearm is lifted
	PlatterSlowRevolution = 24 * time.Second

	// PlatterDipDuration is how long a needle-drop dip holds the slow speed
	PlatterDipDuration = 400 * time.Millisecond
)

// Effects
const (
	RippleGrowth   = 25.0
	RippleLifetime = 800 * time.Millisecond

	PuffCount       = 8
	PuffMinDistance = 15.0
	PuffMaxDistance = 45.0
	PuffLifetime    = 700 * time.Millisecond

	MoteCount       = 15
	MoteMinLifetime = 8 * time.Second
	MoteMaxLifetime = 20 * time.Second
	MoteMinDrift    = 20.0
	MoteMaxDrift    = 60.0
)
