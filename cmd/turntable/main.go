package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turntable/audio"
	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/state"
)

var (
	debugFlag         = flag.Bool("debug", false, "Write a debug log to logs/turntable.log")
	soundFlag         = flag.Bool("sound", false, "Start with sound enabled")
	themeFlag         = flag.String("theme", state.ThemeDark, "Color theme: dark, light")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Disable ambient dust and puffs")
	contentFlag       = flag.String("content", constants.DefaultContentDir, "Directory of <section>.txt overrides")
	exportFlag        = flag.String("export", constants.DefaultExportDir, "Directory full mode writes sections to")
	fpsFlag           = flag.Int("fps", constants.DefaultFPS, "Frame rate")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	opts := options{
		Debug:         *debugFlag,
		Sound:         *soundFlag,
		ReducedMotion: *reducedMotionFlag,
		Theme:         *themeFlag,
		ContentDir:    *contentFlag,
		ExportDir:     *exportFlag,
		FPS:           max(*fpsFlag, 1),
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTURNTABLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the turntable runs silent
		log.Printf("Audio initialization failed: %v", err)
	}

	a := newApp(opts, sound)
	defer a.close()

	run(screen, a, time.Second/time.Duration(opts.FPS))
	screen.Fini()
}

// run is the frame loop: input drained from a polling goroutine, one step and draw per tick
func run(screen tcell.Screen, a *app, interval time.Duration) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if a.handleIntent(a.input.Process(ev)) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.step(now, dt)
			a.draw(screen)
			screen.Show()
		}
	}
}
