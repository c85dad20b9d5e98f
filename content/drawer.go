package content

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/state"
)

// ErrUnknownSection is returned when no section exists for an id
var ErrUnknownSection = errors.New("unknown section")

// Drawer is the slide-up content panel: a tab label plus a wrapped body
// Sections split into cards show the header and one card at a time
type Drawer struct {
	mu      sync.Mutex
	catalog *Catalog
	store   *state.Store
	width   int

	sectionID string
	label     string
	lines     []string
	offset    int

	header string
	cards  []string
	card   int
}

// NewDrawer creates an empty drawer wrapping at width cells
func NewDrawer(catalog *Catalog, store *state.Store, width int) *Drawer {
	if width <= 0 {
		width = constants.DrawerDefaultWidth
	}
	return &Drawer{
		catalog: catalog,
		store:   store,
		width:   max(width, constants.DrawerMinWidth),
	}
}

// Load sets the tab label and body for id; an unknown id leaves the drawer untouched
func (d *Drawer) Load(id string) error {
	section, ok := d.catalog.Get(id)
	if !ok {
		return ErrUnknownSection
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.sectionID = id
	d.label = d.catalog.Label(id)
	d.header, d.cards = SplitCards(section.Body)
	d.card = 0
	d.offset = 0
	d.rewrap()
	return nil
}

// rewrap rebuilds the visible lines; caller holds mu
func (d *Drawer) rewrap() {
	if len(d.cards) == 0 {
		d.lines = Wrap(d.header, d.width)
		return
	}
	lines := Wrap(d.header, d.width)
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	d.lines = append(lines, Wrap(d.cards[d.card], d.width)...)
}

// SetWidth rewraps the loaded body
func (d *Drawer) SetWidth(width int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	width = max(width, constants.DrawerMinWidth)
	if width == d.width {
		return
	}
	d.width = width
	if d.sectionID != "" {
		d.rewrap()
		d.offset = min(d.offset, max(len(d.lines)-1, 0))
	}
}

// Open expands the drawer; nothing happens before the first needle drop
func (d *Drawer) Open() bool {
	if d.store.Snapshot().CurrentSection == "" || !d.HasContent() {
		return false
	}
	d.store.Write(state.Set(state.KeyExpanded, true))
	return true
}

// Close collapses the drawer
func (d *Drawer) Close() {
	d.store.Write(state.Set(state.KeyExpanded, false))
}

// Toggle opens a closed drawer or closes an open one
func (d *Drawer) Toggle() {
	if d.store.Snapshot().Expanded {
		d.Close()
		return
	}
	d.Open()
}

// Scroll moves the first visible line by delta, clamped to the body
func (d *Drawer) Scroll(delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offset = min(max(d.offset+delta, 0), max(len(d.lines)-1, 0))
}

// Deck returns the top card index and the card count; total is 0 without cards
func (d *Drawer) Deck() (index, total int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.card, len(d.cards)
}

// MoveCard brings another card to the top, clamped to the deck
// Reports whether the top card changed
func (d *Drawer) MoveCard(delta int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.cards) == 0 {
		return false
	}
	next := min(max(d.card+delta, 0), len(d.cards)-1)
	if next == d.card {
		return false
	}
	d.card = next
	d.offset = 0
	d.rewrap()
	return true
}

// Expanded reports whether the drawer is open
func (d *Drawer) Expanded() bool {
	return d.store.Snapshot().Expanded
}

// HasContent reports whether a section has been loaded
func (d *Drawer) HasContent() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sectionID != ""
}

// SectionID returns the loaded section id
func (d *Drawer) SectionID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sectionID
}

// Label returns the tab label
func (d *Drawer) Label() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.label
}

// Lines returns up to height body lines from the scroll offset
func (d *Drawer) Lines(height int) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.offset >= len(d.lines) {
		return nil
	}
	end := len(d.lines)
	if height > 0 {
		end = min(end, d.offset+height)
	}
	out := make([]string, end-d.offset)
	copy(out, d.lines[d.offset:end])
	return out
}

// HandleEvent implements events.Handler
func (d *Drawer) HandleEvent(_ time.Time, ev events.Event) {
	p, ok := ev.Payload.(*events.RingPayload)
	if !ok || p.ID == "" {
		return
	}
	if err := d.Load(p.ID); err != nil {
		log.Printf("content: load %q: %v", p.ID, err)
	}
}

// EventTypes implements events.Handler
func (d *Drawer) EventTypes() []events.EventType {
	return []events.EventType{events.EventContentLoad}
}
