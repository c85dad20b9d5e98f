package controls

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/state"
)

type recordingMover struct {
	now   time.Duration
	moves []string
	at    []time.Duration
}

func (m *recordingMover) MoveToGroove(id string) {
	m.moves = append(m.moves, id)
	m.at = append(m.at, m.now)
}

func newControls() (*Controls, *state.Store, *recordingMover) {
	store := state.NewStore(state.Default())
	mover := &recordingMover{}
	return New(store, mover, groove.DefaultGrooves()), store, mover
}

// run advances controls in fixed frames, keeping the mover clock in step
func run(c *Controls, m *recordingMover, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += constants.FrameUpdateInterval {
		m.now += constants.FrameUpdateInterval
		c.Tick(constants.FrameUpdateInterval)
	}
}

func TestToggleSound(t *testing.T) {
	c, store, _ := newControls()

	if store.Snapshot().SoundEnabled {
		t.Fatal("Expected sound muted by default")
	}
	if !c.ToggleSound() || !store.Snapshot().SoundEnabled {
		t.Error("Expected sound enabled after toggle")
	}
	if c.ToggleSound() || store.Snapshot().SoundEnabled {
		t.Error("Expected sound muted after second toggle")
	}
}

func TestToggleTheme(t *testing.T) {
	c, store, _ := newControls()

	if got := c.ToggleTheme(); got != state.ThemeLight {
		t.Errorf("Expected light, got %s", got)
	}
	if got := c.ToggleTheme(); got != state.ThemeDark {
		t.Errorf("Expected dark, got %s", got)
	}

	if c.SetTheme("sepia") {
		t.Error("Expected unknown theme to be rejected")
	}
	if store.Snapshot().Theme != state.ThemeDark {
		t.Errorf("Expected theme unchanged, got %s", store.Snapshot().Theme)
	}
	if !c.SetTheme(state.ThemeLight) || store.Snapshot().Theme != state.ThemeLight {
		t.Error("Expected light theme applied")
	}
}

func TestAutoPlayTour(t *testing.T) {
	c, store, mover := newControls()

	if !c.ToggleAutoPlay() {
		t.Fatal("Expected autoplay to start")
	}
	if !store.Snapshot().AutoPlaying {
		t.Fatal("Expected autoPlaying=true")
	}

	run(c, mover, 100*time.Millisecond)
	if len(mover.moves) != 1 || mover.moves[0] != "intro" {
		t.Fatalf("Expected immediate move to intro, got %v", mover.moves)
	}

	run(c, mover, 7*time.Second)
	if len(mover.moves) != 1 {
		t.Fatalf("Expected no second move before the interval, got %v", mover.moves)
	}

	run(c, mover, 10*time.Second)
	if len(mover.moves) != 3 {
		t.Fatalf("Expected all three grooves, got %v", mover.moves)
	}
	expected := []string{"intro", "cv", "portfolio"}
	for i, id := range expected {
		if mover.moves[i] != id {
			t.Errorf("Expected move %d to %s, got %s", i, id, mover.moves[i])
		}
	}

	// Spacing is the interval, frame-quantised
	for i := 1; i < len(mover.at); i++ {
		gap := mover.at[i] - mover.at[i-1]
		if gap < constants.AutoPlayInterval || gap > constants.AutoPlayInterval+3*constants.FrameUpdateInterval {
			t.Errorf("Expected gap ~%v, got %v", constants.AutoPlayInterval, gap)
		}
	}

	if store.Snapshot().AutoPlaying {
		t.Error("Expected autoPlaying cleared after the last groove")
	}
	if c.AutoPlaying() {
		t.Error("Expected schedule finished")
	}
}

func TestAutoPlayToggleCancels(t *testing.T) {
	c, store, mover := newControls()

	c.ToggleAutoPlay()
	run(c, mover, time.Second)

	if c.ToggleAutoPlay() {
		t.Fatal("Expected second toggle to stop autoplay")
	}
	if store.Snapshot().AutoPlaying {
		t.Error("Expected autoPlaying=false after stop")
	}

	run(c, mover, 20*time.Second)
	if len(mover.moves) != 1 {
		t.Errorf("Expected no moves after cancel, got %v", mover.moves)
	}
}

func TestAutoPlayWithoutGrooves(t *testing.T) {
	store := state.NewStore(state.Default())
	c := New(store, &recordingMover{}, nil)

	if c.ToggleAutoPlay() {
		t.Error("Expected autoplay refused without grooves")
	}
	if store.Snapshot().AutoPlaying {
		t.Error("Expected autoPlaying unchanged")
	}
}

type recordingExporter struct {
	ids []string
	err error
}

func (e *recordingExporter) Export(id string) (string, error) {
	e.ids = append(e.ids, id)
	if e.err != nil {
		return "", e.err
	}
	return "export/" + id + ".txt", nil
}

func TestOpenFullMode(t *testing.T) {
	c, store, _ := newControls()

	if _, ok := c.OpenFullMode(); ok {
		t.Error("Expected full mode refused without an exporter")
	}

	exp := &recordingExporter{}
	c.SetExporter(exp)

	// Nothing to export before the first needle drop
	if _, ok := c.OpenFullMode(); ok || len(exp.ids) != 0 {
		t.Fatalf("Expected no export without a current section, got %v", exp.ids)
	}

	store.Write(state.Set(state.KeyCurrentSection, "cv"))
	path, ok := c.OpenFullMode()
	if !ok || path != "export/cv.txt" {
		t.Errorf("Expected export/cv.txt, got %q (ok=%v)", path, ok)
	}
	if len(exp.ids) != 1 || exp.ids[0] != "cv" {
		t.Errorf("Expected one export of cv, got %v", exp.ids)
	}

	exp.err = errors.New("disk full")
	if _, ok := c.OpenFullMode(); ok {
		t.Error("Expected failed export reported")
	}
}
