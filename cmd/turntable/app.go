package main

import (
	"log"
	"time"

	"github.com/lixenwraith/turntable/audio"
	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/content"
	"github.com/lixenwraith/turntable/controls"
	"github.com/lixenwraith/turntable/effects"
	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/input"
	"github.com/lixenwraith/turntable/platter"
	"github.com/lixenwraith/turntable/render"
	"github.com/lixenwraith/turntable/state"
	"github.com/lixenwraith/turntable/tonearm"
)

// options are the command-line settings
type options struct {
	Debug         bool
	Sound         bool
	ReducedMotion bool
	Theme         string
	ContentDir    string
	ExportDir     string
	FPS           int
}

// app wires every collaborator around the tonearm; all methods run on the frame loop
type app struct {
	store  *state.Store
	queue  *events.EventQueue
	router *events.Router[time.Time]

	registry *groove.Registry
	arm      *tonearm.Tonearm
	platter  *platter.Platter
	fx       *effects.System
	sound    *audio.SoundManager
	drawer   *content.Drawer
	controls *controls.Controls
	scene    *render.Scene
	input    *input.Machine
}

// newApp builds the object graph; sound may be nil to run silent
func newApp(opts options, sound *audio.SoundManager) *app {
	initial := state.Default()
	initial.SoundEnabled = opts.Sound

	a := &app{
		store:    state.NewStore(initial),
		queue:    events.NewEventQueue(),
		registry: groove.DefaultRegistry(),
		platter:  platter.New(),
		fx:       effects.New(constants.ViewBoxWidth, constants.ViewBoxHeight, opts.ReducedMotion, nil),
		sound:    sound,
	}
	a.router = events.NewRouter[time.Time](a.queue)

	cfg := tonearm.DefaultConfig()
	if opts.FPS > 0 {
		cfg.FPS = opts.FPS
	}
	table := groove.NewTable(a.registry, cfg.Arm, constants.CalibrationStep, constants.SnapThreshold)
	a.arm = tonearm.New(table, a.store, a.queue, cfg)

	catalog := content.NewCatalog(a.registry)
	if opts.ContentDir != "" {
		if n, err := catalog.LoadDir(opts.ContentDir); err != nil {
			log.Printf("content: %v", err)
		} else {
			log.Printf("content: %d override(s) from %s", n, opts.ContentDir)
		}
	}
	a.drawer = content.NewDrawer(catalog, a.store, constants.DrawerDefaultWidth)

	a.controls = controls.New(a.store, a.arm, a.registry.Grooves())
	a.controls.SetExporter(content.NewExporter(catalog, opts.ExportDir))
	if opts.Theme != "" {
		a.controls.SetTheme(opts.Theme)
	}

	a.scene = render.NewScene(a.registry, a.store, a.arm, a.platter, a.fx, a.drawer)
	a.input = input.NewMachine(a.arm, a.scene)

	a.router.Register(a.platter)
	a.router.Register(a.fx)
	a.router.Register(a.drawer)
	a.router.Register(a.scene)
	if a.sound != nil {
		a.sound.Bind(a.store)
		a.router.Register(a.sound)
	}
	a.router.Register(events.HandlerFunc[time.Time]{
		Types: []events.EventType{events.EventActiveRingChanged, events.EventStatusChanged},
		Fn: func(_ time.Time, ev events.Event) {
			log.Printf("event %s frame=%d payload=%+v", ev.Type, ev.Frame, ev.Payload)
		},
	})

	a.store.Subscribe(state.KeyExpanded, func(value, _ any) {
		if open, _ := value.(bool); open {
			a.input.SetMode(input.ModeDrawer)
		} else {
			a.input.SetMode(input.ModeTurntable)
		}
	})

	a.fx.SpawnMotes(constants.MoteCount)

	// A failed init leaves the arm inert; the rest of the page still runs
	if err := a.arm.Init(a.scene); err != nil {
		log.Printf("tonearm init aborted: %v", err)
	}
	return a
}

// handleIntent applies one input intent and reports whether to quit
func (a *app) handleIntent(it *input.Intent) bool {
	if it == nil {
		return false
	}

	switch it.Type {
	case input.IntentQuit:
		return true

	case input.IntentPointerDown:
		a.arm.PointerDown(it.Point.X)
	case input.IntentPointerMove:
		a.arm.PointerMove(it.Point.X)
	case input.IntentPointerUp:
		a.arm.PointerUp()

	case input.IntentNextGroove:
		a.arm.HandleKey(tonearm.KeyNext)
	case input.IntentPreviousGroove:
		a.arm.HandleKey(tonearm.KeyPrevious)
	case input.IntentActivate:
		a.arm.HandleKey(tonearm.KeyActivate)
	case input.IntentEscape:
		a.arm.HandleKey(tonearm.KeyEscape)
		a.drawer.Close()

	case input.IntentToggleSound:
		a.controls.ToggleSound()
	case input.IntentToggleTheme:
		a.controls.ToggleTheme()
	case input.IntentToggleAutoPlay:
		a.controls.ToggleAutoPlay()
	case input.IntentFullMode:
		if path, ok := a.controls.OpenFullMode(); ok {
			a.scene.SetNotice("saved " + path)
		}

	case input.IntentOpenDrawer:
		a.drawer.Open()
	case input.IntentCloseDrawer:
		a.drawer.Close()
	case input.IntentScrollDrawer:
		a.drawer.Scroll(int(it.ScrollDir) * constants.DrawerScrollStep)
	case input.IntentPreviousCard:
		a.drawer.MoveCard(-1)
	case input.IntentNextCard:
		a.drawer.MoveCard(1)
	}
	return false
}

// step advances one frame: schedules, tweens, event fan-out, then visuals
func (a *app) step(now time.Time, dt time.Duration) {
	a.controls.Tick(dt)
	a.arm.Tick(dt)
	a.router.DispatchAll(now)
	a.platter.Tick(dt)
	a.fx.Tick(dt)
}

// draw renders the current frame
func (a *app) draw(c render.Canvas) {
	a.scene.Draw(c)
}

// close releases the speaker
func (a *app) close() {
	a.controls.StopAutoPlay()
	if a.sound != nil {
		a.sound.Cleanup()
	}
}
