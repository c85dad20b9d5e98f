package tonearm

import (
	"fmt"

	"github.com/lixenwraith/turntable/tween"
)

// KeyAction is a discrete navigation command
type KeyAction uint8

const (
	KeyNext     KeyAction = iota + 1 // Toward the center, next groove
	KeyPrevious                      // Toward the rest, parks below the first groove
	KeyActivate                      // Drop on the groove under the cursor
	KeyEscape                        // Clear cursor and park
)

// HandleKey moves the keyboard cursor over content grooves only
func (t *Tonearm) HandleKey(action KeyAction) {
	if !t.initialized || t.machine.State().Dragging {
		return
	}
	n := t.table.GrooveCount()

	switch action {
	case KeyNext:
		t.cursor = min(t.cursor+1, n-1)
		t.moveToIndex(t.cursor)

	case KeyPrevious:
		t.cursor = max(t.cursor-1, -1)
		if t.cursor < 0 {
			t.ReturnToParked()
		} else {
			t.moveToIndex(t.cursor)
		}

	case KeyActivate:
		g, ok := t.table.Groove(t.cursor)
		if !ok {
			return
		}
		t.anim.Cancel()
		t.machine.SetAngle(g.Angle)
		t.DropNeedle(g.Ring)

	case KeyEscape:
		t.cursor = -1
		t.ReturnToParked()
	}
}

func (t *Tonearm) moveToIndex(index int) {
	g, ok := t.table.Groove(index)
	if !ok {
		return
	}
	t.anim.Start(&tween.Tween{
		From:     t.machine.Angle(),
		To:       g.Angle,
		Duration: t.cfg.KeyboardMoveDuration,
		Ease:     tween.Power2Out,
		OnUpdate: t.machine.SetAngle,
	})
	t.machine.SetHighlight(g.ID)
	t.setStatus(fmt.Sprintf(statusOver, g.DisplayName()), t.status.ValueNow)
}
