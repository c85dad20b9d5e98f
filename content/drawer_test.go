package content

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/state"
)

func newTestDrawer(width int) (*Drawer, *state.Store) {
	store := state.NewStore(state.Default())
	return NewDrawer(NewCatalog(groove.DefaultRegistry()), store, width), store
}

func TestDrawerLoad(t *testing.T) {
	d, _ := newTestDrawer(40)

	if d.HasContent() {
		t.Fatal("Expected empty drawer")
	}

	if err := d.Load("cv"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Label() != "CV" {
		t.Errorf("Expected label CV, got %q", d.Label())
	}
	if len(d.Lines(0)) == 0 {
		t.Error("Expected body lines")
	}

	if err := d.Load("easter-egg-2"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Label() != "EASTER-EGG-2" {
		t.Errorf("Expected upper-cased id label, got %q", d.Label())
	}
}

func TestDrawerLoadUnknownIsNoop(t *testing.T) {
	d, _ := newTestDrawer(40)
	d.Load("intro")
	before := d.Lines(0)

	err := d.Load("missing")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("Expected ErrUnknownSection, got %v", err)
	}
	if d.SectionID() != "intro" || d.Label() != "INTRO" {
		t.Errorf("Expected drawer unchanged, got %s / %s", d.SectionID(), d.Label())
	}
	if len(d.Lines(0)) != len(before) {
		t.Error("Expected body unchanged")
	}
}

func TestDrawerOpenClose(t *testing.T) {
	d, store := newTestDrawer(40)

	// Nothing to show before the first needle drop
	if d.Open() {
		t.Fatal("Expected open to be refused without a current section")
	}
	if store.Snapshot().Expanded {
		t.Fatal("Expected drawer collapsed")
	}

	store.Write(state.Set(state.KeyCurrentSection, "intro"))
	d.Load("intro")

	if !d.Open() || !d.Expanded() {
		t.Fatal("Expected drawer open")
	}

	d.Toggle()
	if d.Expanded() {
		t.Error("Expected toggle to close")
	}
	d.Toggle()
	if !d.Expanded() {
		t.Error("Expected toggle to open")
	}
	d.Close()
	if store.Snapshot().Expanded {
		t.Error("Expected close to write isExpanded=false")
	}
}

func TestDrawerScrollAndLines(t *testing.T) {
	d, _ := newTestDrawer(20)
	d.Load("portfolio")
	all := d.Lines(0)
	if len(all) < 4 {
		t.Fatalf("Expected wrapped portfolio, got %d lines", len(all))
	}

	page := d.Lines(3)
	if len(page) != 3 || page[0] != all[0] {
		t.Errorf("Expected first 3 lines, got %v", page)
	}

	d.Scroll(2)
	if got := d.Lines(1); got[0] != all[2] {
		t.Errorf("Expected line 2 after scroll, got %q", got[0])
	}

	d.Scroll(-100)
	if got := d.Lines(1); got[0] != all[0] {
		t.Errorf("Expected scroll clamped at top, got %q", got[0])
	}

	d.Scroll(1000)
	if got := d.Lines(0); len(got) != 1 {
		t.Errorf("Expected scroll clamped to last line, got %d lines", len(got))
	}
}

func TestDrawerSetWidthRewraps(t *testing.T) {
	d, _ := newTestDrawer(80)
	d.Load("intro")
	wide := len(d.Lines(0))

	d.SetWidth(20)
	if narrow := len(d.Lines(0)); narrow <= wide {
		t.Errorf("Expected more lines at narrow width, got %d vs %d", narrow, wide)
	}
}

func TestDrawerHandleEvent(t *testing.T) {
	d, _ := newTestDrawer(40)

	d.HandleEvent(time.Now(), events.Event{
		Type:    events.EventContentLoad,
		Payload: &events.RingPayload{ID: "portfolio", Label: "PORTFOLIO"},
	})
	if d.SectionID() != "portfolio" {
		t.Errorf("Expected portfolio loaded, got %q", d.SectionID())
	}

	// Empty and foreign payloads are ignored
	d.HandleEvent(time.Now(), events.Event{Type: events.EventContentLoad, Payload: &events.RingPayload{}})
	d.HandleEvent(time.Now(), events.Event{Type: events.EventContentLoad, Payload: "cv"})
	if d.SectionID() != "portfolio" {
		t.Errorf("Expected portfolio kept, got %q", d.SectionID())
	}

	if types := d.EventTypes(); len(types) != 1 || types[0] != events.EventContentLoad {
		t.Errorf("Expected ContentLoad subscription, got %v", types)
	}
}

func TestDrawerDeck(t *testing.T) {
	d, _ := newTestDrawer(60)

	d.Load("intro")
	if _, total := d.Deck(); total != 0 {
		t.Fatalf("Expected no deck for intro, got %d cards", total)
	}
	if d.MoveCard(1) {
		t.Error("Expected MoveCard to do nothing without a deck")
	}

	d.Load("portfolio")
	index, total := d.Deck()
	if index != 0 || total != 3 {
		t.Fatalf("Expected card 1 of 3, got %d of %d", index+1, total)
	}
	if !containsLine(d.Lines(0), "Turntable") || containsLine(d.Lines(0), "Terminal games") {
		t.Errorf("Expected only the first card below the header, got %v", d.Lines(0))
	}
	if !containsLine(d.Lines(0), "# Portfolio") {
		t.Error("Expected header above the card")
	}

	// Clamped at the top
	if d.MoveCard(-1) {
		t.Error("Expected no move above the first card")
	}

	d.Scroll(2)
	if !d.MoveCard(1) {
		t.Fatal("Expected move to the second card")
	}
	if index, _ := d.Deck(); index != 1 {
		t.Errorf("Expected card index 1, got %d", index)
	}
	if got := d.Lines(1); len(got) == 0 || got[0] != "# Portfolio" {
		t.Errorf("Expected scroll reset on card change, got %v", got)
	}
	if !containsLine(d.Lines(0), "Terminal games") {
		t.Errorf("Expected second card, got %v", d.Lines(0))
	}

	// Clamped at the bottom
	d.MoveCard(10)
	if index, _ := d.Deck(); index != 2 {
		t.Errorf("Expected last card, got %d", index)
	}
	if d.MoveCard(1) {
		t.Error("Expected no move past the last card")
	}

	// Rewrapping keeps the top card
	d.SetWidth(30)
	if !containsLine(d.Lines(0), "Small services") {
		t.Errorf("Expected last card after rewrap, got %v", d.Lines(0))
	}

	// Loading again starts from the first card
	d.Load("portfolio")
	if index, _ := d.Deck(); index != 0 {
		t.Errorf("Expected reload to reset the deck, got %d", index)
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
