package constants

import "time"

// Tonearm geometry (viewBox units)
const (
	PivotX = 765.0
	PivotY = 85.0

	// NeedleTipLocalX/Y is the needle tip position at 0° rotation
	NeedleTipLocalX = 765.0
	NeedleTipLocalY = 558.0
)

// Rotation limits in degrees, positive swings the needle toward the platter
const (
	ParkedAngle = 0.0
	MinAngle    = -5.0
	MaxAngle    = 55.0
)

// Drag behaviour
const (
	// PixelsPerDegree converts horizontal pointer travel into rotation
	PixelsPerDegree = 3.0

	// SnapThreshold pulls the arm onto a calibrated groove angle
	SnapThreshold = 3.0

	// CalibrationStep is the sampling resolution of the angle scan
	CalibrationStep = 0.5

	// ArmGrabDistance is how close a press must land to the arm segment to start a drag
	ArmGrabDistance = 24.0
)

// Tonearm tween timing
const (
	// ParkDuration is the swing back to the rest
	ParkDuration = 800 * time.Millisecond

	// AutoMoveDuration is the programmatic move to a groove before the drop
	AutoMoveDuration = 800 * time.Millisecond

	// KeyboardMoveDuration is shorter since keyboard moves are direct jumps
	KeyboardMoveDuration = 500 * time.Millisecond

	// SettleMaxDuration bounds the needle-drop bounce
	SettleMaxDuration = 300 * time.Millisecond

	// SettleImpulse is the initial angular velocity (deg/s) of the drop bounce
	SettleImpulse = 40.0

	// SettleFrequency and SettleDamping shape the under-damped bounce spring
	SettleFrequency = 18.0
	SettleDamping   = 0.35
)

// Autoplay
const (
	// AutoPlayInterval separates consecutive grooves during autoplay
	AutoPlayInterval = 8 * time.Second
)
