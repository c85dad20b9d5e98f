// Package platter spins the record and reacts to tonearm speed requests
package platter

import (
	"math"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/events"
)

// Speed is the current revolution mode
type Speed uint8

const (
	SpeedNormal Speed = iota
	SpeedSlow
)

// Platter tracks spin phase; all methods run on the frame loop
type Platter struct {
	normal time.Duration
	slow   time.Duration
	dipFor time.Duration

	speed    Speed
	phase    float64       // Degrees in [0, 360)
	dipTimer time.Duration // Remaining slow time of a dip, 0 when idle
}

// New creates a platter with the stock revolution times
func New() *Platter {
	return &Platter{
		normal: constants.PlatterNormalRevolution,
		slow:   constants.PlatterSlowRevolution,
		dipFor: constants.PlatterDipDuration,
	}
}

func (p *Platter) Speed() Speed   { return p.speed }
func (p *Platter) Phase() float64 { return p.phase }
func (p *Platter) Dipping() bool  { return p.dipTimer > 0 }

// Revolution returns the current time per revolution
func (p *Platter) Revolution() time.Duration {
	if p.speed == SpeedSlow {
		return p.slow
	}
	return p.normal
}

// Slow switches to the lifted-arm speed and cancels a pending dip resume
func (p *Platter) Slow() {
	p.speed = SpeedSlow
	p.dipTimer = 0
}

// Resume returns to normal speed
func (p *Platter) Resume() {
	p.speed = SpeedNormal
	p.dipTimer = 0
}

// Dip slows then resumes after the dip duration
func (p *Platter) Dip() {
	p.speed = SpeedSlow
	p.dipTimer = p.dipFor
}

// Tick advances the spin phase and the dip timer
func (p *Platter) Tick(dt time.Duration) {
	rev := p.Revolution()
	if rev > 0 {
		p.phase = math.Mod(p.phase+360*dt.Seconds()/rev.Seconds(), 360)
	}
	if p.dipTimer > 0 {
		p.dipTimer -= dt
		if p.dipTimer <= 0 {
			p.Resume()
		}
	}
}

// HandleEvent implements events.Handler
func (p *Platter) HandleEvent(_ time.Time, ev events.Event) {
	switch ev.Type {
	case events.EventPlatterSlow:
		p.Slow()
	case events.EventPlatterResume:
		p.Resume()
	case events.EventPlatterDip:
		p.Dip()
	}
}

// EventTypes implements events.Handler
func (p *Platter) EventTypes() []events.EventType {
	return []events.EventType{events.EventPlatterSlow, events.EventPlatterResume, events.EventPlatterDip}
}
