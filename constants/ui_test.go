package constants

import (
	"math"
	"testing"
	"time"
)

// TestFrameRateConsistency verifies the frame interval matches the default FPS
func TestFrameRateConsistency(t *testing.T) {
	expected := time.Second / DefaultFPS
	if diff := FrameUpdateInterval - expected; diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("Expected frame interval near %v, got %v", expected, FrameUpdateInterval)
	}
}

// TestTonearmGeometry verifies the resting needle sits off the platter
func TestTonearmGeometry(t *testing.T) {
	dx := NeedleTipLocalX - PlatterCenterX
	dy := NeedleTipLocalY - PlatterCenterY
	dist := math.Hypot(dx, dy)

	if dist <= PlatterRadius {
		t.Errorf("Expected parked needle outside the platter (r=%v), got distance %v", PlatterRadius, dist)
	}
	if ParkedAngle < MinAngle || ParkedAngle > MaxAngle {
		t.Errorf("Expected parked angle within [%v, %v], got %v", MinAngle, MaxAngle, ParkedAngle)
	}
}

// TestEventBufferMask verifies the queue size is a power of two
func TestEventBufferMask(t *testing.T) {
	if EventQueueSize&(EventQueueSize-1) != 0 {
		t.Errorf("Expected power-of-two queue size, got %d", EventQueueSize)
	}
	if EventBufferMask != EventQueueSize-1 {
		t.Errorf("Expected mask %d, got %d", EventQueueSize-1, EventBufferMask)
	}
}
