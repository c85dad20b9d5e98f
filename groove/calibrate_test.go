package groove

import (
	"math"
	"testing"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/vmath"
)

func defaultTable() *Table {
	return NewTable(DefaultRegistry(), DefaultArm(), constants.CalibrationStep, constants.SnapThreshold)
}

// stepRadiusDelta is the largest tip-radius change one sampling step can cause
func stepRadiusDelta(arm Arm, center vmath.Point, step float64) float64 {
	maxDelta := 0.0
	for a := arm.MinAngle; a+step <= arm.MaxAngle; a += step {
		d0 := vmath.Distance(arm.TipAt(a), center)
		d1 := vmath.Distance(arm.TipAt(a+step), center)
		maxDelta = math.Max(maxDelta, math.Abs(d1-d0))
	}
	return maxDelta
}

func TestCalibrationCorrectness(t *testing.T) {
	table := defaultTable()
	arm := table.Arm()
	center := table.Registry().Center()
	bound := stepRadiusDelta(arm, center, constants.CalibrationStep)

	for _, ring := range table.Registry().Rings() {
		c, ok := table.Lookup(ring.ID)
		if !ok {
			t.Fatalf("Expected calibration for %q", ring.ID)
		}
		d := vmath.Distance(arm.TipAt(c.Angle), center)
		if math.Abs(d-ring.Radius) > bound {
			t.Errorf("%s: tip radius %f too far from %f (bound %f)", ring.ID, d, ring.Radius, bound)
		}
		if c.Angle < constants.MinAngle || c.Angle > constants.MaxAngle {
			t.Errorf("%s: calibrated angle %f out of range", ring.ID, c.Angle)
		}
	}
}

func TestCalibrationOnSampleGrid(t *testing.T) {
	table := defaultTable()
	for _, ring := range table.Registry().Rings() {
		c, _ := table.Lookup(ring.ID)
		steps := (c.Angle - constants.MinAngle) / constants.CalibrationStep
		if steps != math.Trunc(steps) {
			t.Errorf("%s: angle %f is not on the sample grid", ring.ID, c.Angle)
		}
	}
}

func TestCalibrationFirstMinimumWins(t *testing.T) {
	// Tip on the pivot never moves: every sample ties exactly
	arm := Arm{Pivot: vmath.P(0, 0), TipLocal: vmath.P(0, 0), MinAngle: -5, MaxAngle: 55}
	c := Calibrate(Ring{ID: "flat", Radius: 5}, arm, vmath.P(3, 4), 0.5)
	if c.Angle != -5 {
		t.Errorf("Expected first sample -5 to win ties, got %f", c.Angle)
	}
}

func TestCalibrationIntroDropResolves(t *testing.T) {
	table := defaultTable()
	intro, ok := table.Lookup("intro")
	if !ok {
		t.Fatal("Expected intro calibration")
	}
	ring, ok := table.Resolve(intro.Angle)
	if !ok || ring.ID != "intro" {
		t.Errorf("Expected intro under needle at %f, got %q (ok=%v)", intro.Angle, ring.ID, ok)
	}
}

func TestCalibratedGroovesResolveToThemselves(t *testing.T) {
	table := defaultTable()
	for i := 0; i < table.GrooveCount(); i++ {
		g, _ := table.Groove(i)
		ring, ok := table.Resolve(g.Angle)
		if !ok || ring.ID != g.ID {
			t.Errorf("Groove %q resolved to %q (ok=%v)", g.ID, ring.ID, ok)
		}
	}
}

func TestSnap(t *testing.T) {
	table := defaultTable()
	cv, _ := table.Lookup("cv")

	if got := table.Snap(cv.Angle + 2.9); got != cv.Angle {
		t.Errorf("Expected snap to cv %f, got %f", cv.Angle, got)
	}
	if got := table.Snap(cv.Angle - 2.9); got != cv.Angle {
		t.Errorf("Expected snap to cv %f, got %f", cv.Angle, got)
	}

	free := constants.MinAngle
	if got := table.Snap(free); got != free {
		t.Errorf("Expected %f untouched, got %f", free, got)
	}
}

func TestSnapIdempotent(t *testing.T) {
	table := defaultTable()
	for a := constants.MinAngle; a <= constants.MaxAngle; a += 0.125 {
		s := table.Snap(a)
		if again := table.Snap(s); again != s {
			t.Errorf("Snap not a fixed point at %f: %f then %f", a, s, again)
		}
	}
	for i := 0; i < table.GrooveCount(); i++ {
		g, _ := table.Groove(i)
		if got := table.Snap(g.Angle); got != g.Angle {
			t.Errorf("Calibrated angle %f of %q moved to %f", g.Angle, g.ID, got)
		}
	}
}

// Between two grooves whose snap bands overlap, registry order decides
func TestSnapTieBreakRegistryOrder(t *testing.T) {
	table := defaultTable()
	cv, _ := table.Lookup("cv")
	portfolio, _ := table.Lookup("portfolio")

	mid := (cv.Angle + portfolio.Angle) / 2
	if math.Abs(mid-cv.Angle) >= constants.SnapThreshold {
		t.Skip("Stock grooves no longer overlap in snap range")
	}
	if got := table.Snap(mid); got != cv.Angle {
		t.Errorf("Expected earlier groove cv (%f) to win, got %f", cv.Angle, got)
	}
}

func TestSnapIgnoresHiddenRings(t *testing.T) {
	table := defaultTable()
	egg, _ := table.Lookup("easter-egg-2")
	near := egg.Angle + 1
	if got := table.Snap(near); got == egg.Angle {
		t.Errorf("Expected hidden ring not to attract the arm at %f", near)
	}
}

func TestTableGrooveBounds(t *testing.T) {
	table := defaultTable()
	if table.GrooveCount() != 3 {
		t.Fatalf("Expected 3 grooves, got %d", table.GrooveCount())
	}
	if _, ok := table.Groove(-1); ok {
		t.Error("Expected index -1 to be rejected")
	}
	if _, ok := table.Groove(3); ok {
		t.Error("Expected index 3 to be rejected")
	}
	first, _ := table.Groove(0)
	if first.ID != "intro" {
		t.Errorf("Expected first groove intro, got %q", first.ID)
	}
}
