// Package render draws the turntable into a terminal cell canvas
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/effects"
	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/state"
	"github.com/lixenwraith/turntable/vmath"
)

// ArmSource reports the live tonearm segment
type ArmSource interface {
	Segment() (pivot, tip vmath.Point)
}

// PlatterSource reports the spin phase in degrees and whether a drop dip is running
type PlatterSource interface {
	Phase() float64
	Dipping() bool
}

// EffectsSource lists the transient visuals
type EffectsSource interface {
	Ripples() []effects.Ripple
	Puffs() []effects.Particle
	Motes() []effects.Particle
}

// DrawerSource is the content panel
type DrawerSource interface {
	Expanded() bool
	HasContent() bool
	Label() string
	Lines(height int) []string
	SetWidth(width int)
	Deck() (index, total int)
}

// Scene composes one frame from the live collaborators
type Scene struct {
	registry *groove.Registry
	store    *state.Store
	arm      ArmSource
	platter  PlatterSource
	fx       EffectsSource
	drawer   DrawerSource

	layout    Layout
	highlight string
	active    string
	status    events.StatusPayload
	notice    string
}

// NewScene creates a scene; any source may be nil and is then skipped
func NewScene(registry *groove.Registry, store *state.Store, arm ArmSource, platter PlatterSource, fx EffectsSource, drawer DrawerSource) *Scene {
	return &Scene{
		registry: registry,
		store:    store,
		arm:      arm,
		platter:  platter,
		fx:       fx,
		drawer:   drawer,
		layout:   NewLayout(80, 24),
	}
}

// Resize rebuilds the layout for a new screen size
func (s *Scene) Resize(cols, rows int) {
	s.layout = NewLayout(cols, rows)
	if s.drawer != nil {
		s.drawer.SetWidth(s.drawerBox().innerWidth())
	}
}

// Layout returns the current cell mapping
func (s *Scene) Layout() Layout {
	return s.layout
}

// ToViewBox implements input.Mapper
func (s *Scene) ToViewBox(col, row int) vmath.Point {
	return s.layout.ToViewBox(col, row)
}

// Percent implements tonearm.Viewport
func (s *Scene) Percent(p vmath.Point) (x, y float64) {
	return s.layout.Percent(p)
}

// Highlight returns the highlighted ring id
func (s *Scene) Highlight() string { return s.highlight }

// Active returns the active ring id
func (s *Scene) Active() string { return s.active }

// Status returns the last accessible status
func (s *Scene) Status() events.StatusPayload { return s.status }

// SetNotice shows a one-off message on the status line until the next status change
func (s *Scene) SetNotice(text string) {
	s.notice = text
}

// HandleEvent implements events.Handler
func (s *Scene) HandleEvent(_ time.Time, ev events.Event) {
	switch ev.Type {
	case events.EventHighlightChanged:
		if p, ok := ev.Payload.(*events.RingPayload); ok {
			s.highlight = p.ID
		}
	case events.EventActiveRingChanged:
		if p, ok := ev.Payload.(*events.RingPayload); ok {
			s.active = p.ID
		}
	case events.EventStatusChanged:
		if p, ok := ev.Payload.(*events.StatusPayload); ok {
			s.status = *p
			s.notice = ""
		}
	}
}

// EventTypes implements events.Handler
func (s *Scene) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventHighlightChanged,
		events.EventActiveRingChanged,
		events.EventStatusChanged,
	}
}

// Draw renders a full frame onto c
func (s *Scene) Draw(c Canvas) {
	cols, rows := c.Size()
	if cols != s.layout.Cols || rows != s.layout.Rows {
		s.Resize(cols, rows)
	}

	snap := s.store.Snapshot()
	pal := PaletteFor(snap.Theme)

	s.drawField(c, pal)
	s.drawLabels(c, pal)
	s.drawParticles(c, pal)
	s.drawArm(c, pal, snap.Dragging)
	s.drawStatus(c, pal, snap)
	s.drawDrawer(c, pal)
}

// drawField paints the background, platter, rings, ripples and spindle
func (s *Scene) drawField(c Canvas, pal Palette) {
	center := s.registry.Center()
	cellW, cellH := s.layout.CellSize()
	bg := Style(pal.Label, pal.Background)

	var ripples []effects.Ripple
	if s.fx != nil {
		ripples = s.fx.Ripples()
	}

	for row := 0; row < s.layout.AreaRows(); row++ {
		for col := 0; col < s.layout.Cols; col++ {
			p := s.layout.ToViewBox(col, row)
			d := vmath.Distance(p, center)
			if d > constants.PlatterRadius+cellW {
				put(c, col, row, ' ', bg)
				continue
			}

			// Half the cell's extent along the radial direction
			reach := 0.5 * (cellW + cellH)
			if d > 0 {
				reach = 0.5 * (math.Abs(p.X-center.X)/d*cellW + math.Abs(p.Y-center.Y)/d*cellH)
			}

			glyph, fg := constants.GlyphPlatter, pal.Groove
			if d > constants.PlatterRadius {
				glyph = ' '
			}
			if ring, ok := s.ringAt(d, reach); ok {
				glyph, fg = s.ringGlyph(ring, pal)
			}
			for _, rp := range ripples {
				if math.Abs(d-rp.Radius) <= reach {
					glyph, fg = constants.GlyphRipple, pal.Platter.Blend(pal.Ripple, rp.Opacity)
				}
			}

			cellBg := pal.Platter
			if d > constants.PlatterRadius {
				cellBg = pal.Background
			}
			put(c, col, row, glyph, Style(fg, cellBg))
		}
	}

	// Spindle and the rotating label mark
	spindle := pal.Spindle
	if s.platter != nil && s.platter.Dipping() {
		spindle = pal.Active
	}
	sc, sr := s.layout.ToCell(center)
	put(c, sc, sr, constants.GlyphSpindle, Style(spindle, pal.Platter))
	if s.platter != nil {
		mark := vmath.RotatePoint(vmath.PAdd(center, vmath.P(0, -constants.SpindleMarkRadius)), center, s.platter.Phase())
		mc, mr := s.layout.ToCell(mark)
		if s.layout.InArea(mc, mr) {
			put(c, mc, mr, constants.GlyphGroove, Style(pal.Spindle, pal.Platter))
		}
	}
}

// ringAt returns the visible ring passing through a cell at distance d
// Hidden rings show only while highlighted or active
func (s *Scene) ringAt(d, reach float64) (groove.Ring, bool) {
	for _, ring := range s.registry.Rings() {
		if math.Abs(d-ring.Radius) > reach {
			continue
		}
		if ring.Hidden() && ring.ID != s.highlight && ring.ID != s.active {
			continue
		}
		return ring, true
	}
	return groove.Ring{}, false
}

func (s *Scene) ringGlyph(ring groove.Ring, pal Palette) (rune, RGB) {
	switch ring.ID {
	case s.active:
		return constants.GlyphActive, pal.Active
	case s.highlight:
		return constants.GlyphHighlight, pal.Highlight
	}
	return constants.GlyphGroove, pal.Groove
}

// drawLabels writes content groove labels at the top of each ring
func (s *Scene) drawLabels(c Canvas, pal Palette) {
	if s.layout.Cols < constants.LabelMinCols {
		return
	}
	center := s.registry.Center()
	for _, ring := range s.registry.Grooves() {
		col, row := s.layout.ToCell(vmath.P(center.X, center.Y-ring.Radius))
		label := ring.DisplayName()
		fg := pal.Label
		switch ring.ID {
		case s.active:
			fg = pal.Active
		case s.highlight:
			fg = pal.Highlight
		}
		x := col - runewidth.StringWidth(label)/2
		if s.layout.InArea(x, row) {
			text(c, x, row, label, Style(fg, pal.Platter))
		}
	}
}

func (s *Scene) drawParticles(c Canvas, pal Palette) {
	if s.fx == nil {
		return
	}
	for _, m := range s.fx.Motes() {
		s.dot(c, m.Pos, constants.GlyphMote, pal, m.Opacity)
	}
	for _, p := range s.fx.Puffs() {
		s.dot(c, p.Pos, constants.GlyphDust, pal, p.Opacity)
	}
}

func (s *Scene) dot(c Canvas, p vmath.Point, glyph rune, pal Palette, opacity float64) {
	col, row := s.layout.ToCell(p)
	if !s.layout.InArea(col, row) {
		return
	}
	bgc := pal.Background
	if vmath.Distance(p, s.registry.Center()) <= constants.PlatterRadius {
		bgc = pal.Platter
	}
	put(c, col, row, glyph, Style(bgc.Blend(pal.Dust, opacity), bgc))
}

// drawArm traces the segment from pivot to needle tip
func (s *Scene) drawArm(c Canvas, pal Palette, dragging bool) {
	if s.arm == nil {
		return
	}
	pivot, tip := s.arm.Segment()
	cellW, cellH := s.layout.CellSize()

	fg := pal.Arm
	if dragging {
		fg = pal.Highlight
	}

	length := vmath.Distance(pivot, tip)
	step := math.Min(cellW, cellH) / 2
	steps := int(length/step) + 1
	for i := 0; i <= steps; i++ {
		p := vmath.P(vmath.Lerp(pivot.X, tip.X, float64(i)/float64(steps)), vmath.Lerp(pivot.Y, tip.Y, float64(i)/float64(steps)))
		col, row := s.layout.ToCell(p)
		if s.layout.InArea(col, row) {
			put(c, col, row, constants.GlyphArm, Style(fg, s.bgAt(p, pal)))
		}
	}

	pc, pr := s.layout.ToCell(pivot)
	if s.layout.InArea(pc, pr) {
		put(c, pc, pr, constants.GlyphPivot, Style(pal.Arm, s.bgAt(pivot, pal)))
	}
	tc, tr := s.layout.ToCell(tip)
	if s.layout.InArea(tc, tr) {
		put(c, tc, tr, constants.GlyphNeedle, Style(pal.Needle, s.bgAt(tip, pal)))
	}
}

func (s *Scene) bgAt(p vmath.Point, pal Palette) RGB {
	if vmath.Distance(p, s.registry.Center()) <= constants.PlatterRadius {
		return pal.Platter
	}
	return pal.Background
}

// StatusLine builds the accessible status text
func (s *Scene) StatusLine(snap state.State) string {
	valueText := s.status.ValueText
	if valueText == "" {
		valueText = "Parked"
	}

	parts := []string{valueText}
	if s.status.ValueNow > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", s.status.ValueNow, len(s.registry.Grooves())))
	}
	if snap.CurrentSection != "" {
		parts = append(parts, "section "+snap.CurrentSection)
	}
	parts = append(parts, "sound "+onOff(snap.SoundEnabled), "autoplay "+onOff(snap.AutoPlaying))
	if s.notice != "" {
		parts = append(parts, s.notice)
	}
	return " " + strings.Join(parts, " | ") + " "
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Scene) drawStatus(c Canvas, pal Palette, snap state.State) {
	row := s.layout.Rows - 1
	style := Style(pal.StatusFg, pal.StatusBg)
	fillRow(c, 0, s.layout.Cols, row, style)
	text(c, 0, row, s.StatusLine(snap), style)
}

// box is a drawer rectangle in cells
type box struct {
	x, y, w, h int
}

func (b box) innerWidth() int {
	return max(b.w-4, 1)
}

func (s *Scene) drawerBox() box {
	area := s.layout.AreaRows()
	h := max(int(float64(area)*constants.DrawerHeightRatio), 3)
	w := min(s.layout.Cols-2, constants.DrawerDefaultWidth+4)
	w = max(w, 3)
	return box{
		x: (s.layout.Cols - w) / 2,
		y: area - h,
		w: w,
		h: h,
	}
}

// drawDrawer draws the open panel, or the collapsed tab once content exists
func (s *Scene) drawDrawer(c Canvas, pal Palette) {
	if s.drawer == nil || !s.drawer.HasContent() {
		return
	}

	body := Style(pal.DrawerFg, pal.DrawerBg)
	title := Style(pal.Accent, pal.DrawerBg).Bold(true)

	if !s.drawer.Expanded() {
		label := " ▲ " + s.drawer.Label() + " "
		w := max(runewidth.StringWidth(label), constants.DrawerTabWidth)
		x := (s.layout.Cols - w) / 2
		row := s.layout.AreaRows() - 1
		fillRow(c, x, x+w, row, body)
		text(c, x+(w-runewidth.StringWidth(label))/2, row, label, title)
		return
	}

	b := s.drawerBox()
	for y := b.y; y < b.y+b.h; y++ {
		fillRow(c, b.x, b.x+b.w, y, body)
	}
	text(c, b.x+2, b.y, "▼ "+s.drawer.Label(), title)

	behind := 0
	if index, total := s.drawer.Deck(); total > 0 {
		behind = min(total-1-index, constants.DeckPeekDepth, max(b.h-3, 0))
		s.drawDeckIndicator(c, b, index, total, title)
	}

	for i, line := range s.drawer.Lines(b.h - 2 - behind) {
		text(c, b.x+2, b.y+2+i, line, body)
	}

	// Cards behind the top one peek out as inset edges at the bottom
	edge := Style(pal.Groove, pal.DrawerBg)
	for d := 1; d <= behind; d++ {
		y := b.y + b.h - behind + d - 1
		for x := b.x + 1 + d; x < b.x+b.w-1-d; x++ {
			put(c, x, y, constants.GlyphCardEdge, edge)
		}
	}
}

// drawDeckIndicator writes "↑ n / total ↓" at the right of the title row
// An arrow is blank when that end of the deck is reached
func (s *Scene) drawDeckIndicator(c Canvas, b box, index, total int, style tcell.Style) {
	up, down := "↑", "↓"
	if index == 0 {
		up = " "
	}
	if index >= total-1 {
		down = " "
	}
	label := fmt.Sprintf("%s %d / %d %s", up, index+1, total, down)
	text(c, b.x+b.w-2-runewidth.StringWidth(label), b.y, label, style)
}
