package audio

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/state"
)

// SoundManager owns the speaker, the mixer and the crackle loop
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	rate        beep.SampleRate
	rng         *rand.Rand
	mixer       *beep.Mixer
	crackle     *beep.Ctrl
	initialized bool
	enabled     bool
}

// NewSoundManager creates a muted sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return fmt.Errorf("%w: disabled by configuration", ErrAudioUnavailable)
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w: %w", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	if sm.enabled {
		sm.startCrackleLocked()
	}
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.crackle != nil {
		sm.crackle.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.crackle = nil
	sm.initialized = false
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Enabled reports whether playback is unmuted
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// SetEnabled mutes or unmutes all playback; crackle follows the flag
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.enabled == on {
		return
	}
	sm.enabled = on

	if !sm.initialized {
		return
	}
	if on {
		sm.startCrackleLocked()
	} else {
		sm.stopCrackleLocked()
	}
}

// Bind follows the soundEnabled flag of the store
func (sm *SoundManager) Bind(store *state.Store) {
	store.Subscribe(state.KeySoundEnabled, func(value, _ any) {
		if on, ok := value.(bool); ok {
			sm.SetEnabled(on)
		}
	})
	sm.SetEnabled(store.Snapshot().SoundEnabled)
}

// PlayThump plays the needle-drop sound
func (sm *SoundManager) PlayThump() {
	sm.play(SoundThump, CreateThumpSound)
}

// PlayScratch plays the groove-crossing sound
func (sm *SoundManager) PlayScratch() {
	sm.play(SoundScratch, CreateScratchSound)
}

func (sm *SoundManager) play(st SoundType, create func(beep.SampleRate, *rand.Rand) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	streamer := newVolume(create(sm.rate, sm.rng), sm.config.level(st))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) startCrackleLocked() {
	speaker.Lock()
	defer speaker.Unlock()

	// Already looping
	if sm.crackle != nil && !sm.crackle.Paused {
		return
	}
	if sm.crackle != nil {
		sm.crackle.Paused = false
		return
	}

	sm.crackle = &beep.Ctrl{
		Streamer: newVolume(CreateCrackleSound(sm.rate, sm.rng), sm.config.level(SoundCrackle)),
	}
	sm.mixer.Add(sm.crackle)
}

func (sm *SoundManager) stopCrackleLocked() {
	speaker.Lock()
	defer speaker.Unlock()

	if sm.crackle != nil {
		sm.crackle.Paused = true
	}
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(_ time.Time, ev events.Event) {
	switch ev.Type {
	case events.EventNeedleThump:
		sm.PlayThump()
	case events.EventScratch:
		sm.PlayScratch()
	default:
		log.Printf("audio: unexpected event %s", ev.Type)
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventNeedleThump, events.EventScratch}
}
