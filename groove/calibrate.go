package groove

import (
	"math"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/vmath"
)

// Arm is the rotating tonearm geometry: a needle tip swung around a fixed pivot
type Arm struct {
	Pivot    vmath.Point
	TipLocal vmath.Point // Needle tip at 0°
	MinAngle float64
	MaxAngle float64
}

// DefaultArm returns the stock tonearm geometry
func DefaultArm() Arm {
	return Arm{
		Pivot:    vmath.P(constants.PivotX, constants.PivotY),
		TipLocal: vmath.P(constants.NeedleTipLocalX, constants.NeedleTipLocalY),
		MinAngle: constants.MinAngle,
		MaxAngle: constants.MaxAngle,
	}
}

// TipAt returns the needle tip position for a rotation in degrees
func (a Arm) TipAt(angleDeg float64) vmath.Point {
	return vmath.RotatePoint(a.TipLocal, a.Pivot, angleDeg)
}

// Calibrated is a ring paired with the rotation that lands the needle tip on it
type Calibrated struct {
	Ring
	Angle float64
	Error float64 // |tip distance - radius| at Angle
}

// Calibrate scans [MinAngle, MaxAngle] at step and returns the angle whose tip
// distance from center is closest to the ring radius; the first minimum wins
func Calibrate(ring Ring, arm Arm, center vmath.Point, step float64) Calibrated {
	best := Calibrated{Ring: ring, Angle: arm.MinAngle, Error: math.Inf(1)}
	if step <= 0 {
		step = constants.CalibrationStep
	}

	// Integer stepping keeps the sample grid exact across the range
	samples := int(math.Floor((arm.MaxAngle-arm.MinAngle)/step + 1e-9))
	for i := 0; i <= samples; i++ {
		angle := arm.MinAngle + float64(i)*step
		err := math.Abs(vmath.Distance(arm.TipAt(angle), center) - ring.Radius)
		if err < best.Error {
			best.Error = err
			best.Angle = angle
		}
	}
	return best
}

// Table is the session-stable calibration of every registered ring
type Table struct {
	registry  *Registry
	arm       Arm
	threshold float64
	entries   []Calibrated // Hit-test order: content grooves then eggs
	byID      map[string]int
	grooves   int
}

// NewTable calibrates every ring of the registry once
func NewTable(registry *Registry, arm Arm, step, snapThreshold float64) *Table {
	rings := registry.Rings()
	t := &Table{
		registry:  registry,
		arm:       arm,
		threshold: snapThreshold,
		entries:   make([]Calibrated, 0, len(rings)),
		byID:      make(map[string]int, len(rings)),
	}
	for i, ring := range rings {
		t.entries = append(t.entries, Calibrate(ring, arm, registry.Center(), step))
		t.byID[ring.ID] = i
		if ring.Kind == KindContent {
			t.grooves++
		}
	}
	return t
}

// Registry returns the ring set the table was built from
func (t *Table) Registry() *Registry {
	return t.registry
}

// Arm returns the arm geometry used for calibration
func (t *Table) Arm() Arm {
	return t.arm
}

// Lookup returns the calibration of a ring by id
func (t *Table) Lookup(id string) (Calibrated, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Calibrated{}, false
	}
	return t.entries[i], true
}

// Groove returns the content groove at a 0-based index
func (t *Table) Groove(index int) (Calibrated, bool) {
	if index < 0 || index >= t.grooves {
		return Calibrated{}, false
	}
	return t.entries[index], true
}

// GrooveCount returns the number of content grooves
func (t *Table) GrooveCount() int {
	return t.grooves
}

// Snap pulls angle onto the first content groove calibrated strictly within the
// snap threshold, in registration order; hidden rings never attract the arm
func (t *Table) Snap(angle float64) float64 {
	for _, c := range t.entries[:t.grooves] {
		if math.Abs(angle-c.Angle) < t.threshold {
			return c.Angle
		}
	}
	return angle
}

// Resolve returns the ring under the needle tip at angle
func (t *Table) Resolve(angle float64) (Ring, bool) {
	return t.registry.FindRingAtPoint(t.arm.TipAt(angle))
}
