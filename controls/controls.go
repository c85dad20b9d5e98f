// Package controls implements the sidebar toggles: sound, theme, autoplay and full mode
package controls

import (
	"log"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/state"
	"github.com/lixenwraith/turntable/tween"
)

// Mover moves the tonearm to a groove and drops the needle
type Mover interface {
	MoveToGroove(id string)
}

// Exporter writes a section out of the widget and returns where it went
type Exporter interface {
	Export(id string) (string, error)
}

// Controls writes user toggles into the store and drives autoplay
type Controls struct {
	store    *state.Store
	mover    Mover
	grooves  []groove.Ring
	interval time.Duration
	exporter Exporter

	autoplay tween.Animator
}

// New creates controls cycling through grooves on autoplay
func New(store *state.Store, mover Mover, grooves []groove.Ring) *Controls {
	return &Controls{
		store:    store,
		mover:    mover,
		grooves:  grooves,
		interval: constants.AutoPlayInterval,
	}
}

// ToggleSound flips soundEnabled and returns the new value
func (c *Controls) ToggleSound() bool {
	enabled := !c.store.Snapshot().SoundEnabled
	c.store.Write(state.Set(state.KeySoundEnabled, enabled))
	return enabled
}

// ToggleTheme switches between dark and light and returns the new theme
func (c *Controls) ToggleTheme() string {
	theme := state.ThemeDark
	if c.store.Snapshot().Theme == state.ThemeDark {
		theme = state.ThemeLight
	}
	c.store.Write(state.Set(state.KeyTheme, theme))
	return theme
}

// SetTheme applies a named theme; unknown names are ignored
func (c *Controls) SetTheme(theme string) bool {
	if theme != state.ThemeDark && theme != state.ThemeLight {
		log.Printf("controls: unknown theme %q", theme)
		return false
	}
	c.store.Write(state.Set(state.KeyTheme, theme))
	return true
}

// ToggleAutoPlay starts the groove tour, or stops a running one
func (c *Controls) ToggleAutoPlay() bool {
	if c.store.Snapshot().AutoPlaying {
		c.StopAutoPlay()
		return false
	}
	if len(c.grooves) == 0 {
		return false
	}

	c.store.Write(state.Set(state.KeyAutoPlaying, true))

	tasks := make([]tween.Task, 0, 2*len(c.grooves))
	for i, g := range c.grooves {
		if i > 0 {
			tasks = append(tasks, tween.Delay(c.interval))
		}
		id := g.ID
		tasks = append(tasks, tween.Call(func() { c.mover.MoveToGroove(id) }))
	}

	tour := tween.Sequence(tasks...)
	tour.OnComplete = func() {
		c.store.Write(state.Set(state.KeyAutoPlaying, false))
	}
	c.autoplay.Start(tour)
	return true
}

// StopAutoPlay cancels pending groove moves
func (c *Controls) StopAutoPlay() {
	c.autoplay.Cancel()
	c.store.Write(state.Set(state.KeyAutoPlaying, false))
}

// AutoPlaying reports whether the tour is scheduled
func (c *Controls) AutoPlaying() bool {
	return c.autoplay.Active()
}

// Tick advances the autoplay schedule
func (c *Controls) Tick(dt time.Duration) {
	c.autoplay.Tick(dt)
}

// SetExporter installs the full mode target; nil disables full mode
func (c *Controls) SetExporter(e Exporter) {
	c.exporter = e
}

// OpenFullMode exports the current section and returns the written path
// Nothing happens before the first needle drop
func (c *Controls) OpenFullMode() (string, bool) {
	id := c.store.Snapshot().CurrentSection
	if id == "" || c.exporter == nil {
		return "", false
	}
	path, err := c.exporter.Export(id)
	if err != nil {
		log.Printf("controls: full mode %q: %v", id, err)
		return "", false
	}
	log.Printf("controls: exported %q to %s", id, path)
	return path, true
}
