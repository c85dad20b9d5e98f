// Package effects animates ripples, dust puffs and ambient motes over the platter
package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/events"
	"github.com/lixenwraith/turntable/tween"
	"github.com/lixenwraith/turntable/vmath"
)

// Ripple is an expanding, fading ring on the platter
type Ripple struct {
	Base    float64
	Radius  float64
	Opacity float64
	age     time.Duration
}

// Particle is a dust speck in viewBox units
type Particle struct {
	Pos     vmath.Point
	Opacity float64

	origin   vmath.Point
	travel   vmath.Point
	age      time.Duration
	lifetime time.Duration
	loop     bool
}

// System owns all transient visuals; all methods run on the frame loop
type System struct {
	rng           *rand.Rand
	width, height float64
	reducedMotion bool

	ripples []Ripple
	puffs   []Particle
	motes   []Particle
}

// New creates an effects system over a viewBox of width x height
func New(width, height float64, reducedMotion bool, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &System{rng: rng, width: width, height: height, reducedMotion: reducedMotion}
}

// SpawnMotes seeds the ambient dust; skipped under reduced motion
func (s *System) SpawnMotes(n int) {
	if s.reducedMotion {
		return
	}
	for i := 0; i < n; i++ {
		lifetime := constants.MoteMinLifetime + time.Duration(s.rng.Int63n(int64(constants.MoteMaxLifetime-constants.MoteMinLifetime)))
		origin := vmath.P(s.width*(0.1+s.rng.Float64()*0.8), s.height*(0.1+s.rng.Float64()*0.8))
		drift := constants.MoteMinDrift + s.rng.Float64()*(constants.MoteMaxDrift-constants.MoteMinDrift)
		s.motes = append(s.motes, Particle{
			Pos:      origin,
			Opacity:  0.1 + s.rng.Float64()*0.2,
			origin:   origin,
			travel:   vmath.P(drift, -drift/2),
			age:      time.Duration(s.rng.Int63n(int64(lifetime))),
			lifetime: lifetime,
			loop:     true,
		})
	}
}

// Ripple starts a ripple at radius
func (s *System) Ripple(radius float64) {
	if radius <= 0 {
		return
	}
	s.ripples = append(s.ripples, Ripple{Base: radius, Radius: radius, Opacity: 0.6})
}

// Puff emits a burst of dust at a percent-of-viewport position
func (s *System) Puff(xPercent, yPercent float64) {
	if s.reducedMotion {
		return
	}
	origin := vmath.P(xPercent/100*s.width, yPercent/100*s.height)
	for i := 0; i < constants.PuffCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := constants.PuffMinDistance + s.rng.Float64()*(constants.PuffMaxDistance-constants.PuffMinDistance)
		s.puffs = append(s.puffs, Particle{
			Pos:      origin,
			Opacity:  1,
			origin:   origin,
			travel:   vmath.P(math.Cos(angle)*dist, math.Sin(angle)*dist),
			lifetime: constants.PuffLifetime,
		})
	}
}

// Tick ages every effect and drops finished ones
func (s *System) Tick(dt time.Duration) {
	ripples := s.ripples[:0]
	for _, r := range s.ripples {
		r.age += dt
		if r.age >= constants.RippleLifetime {
			continue
		}
		p := tween.Power2Out(float64(r.age) / float64(constants.RippleLifetime))
		r.Radius = r.Base + constants.RippleGrowth*p
		r.Opacity = 0.6 * (1 - p)
		ripples = append(ripples, r)
	}
	s.ripples = ripples

	s.puffs = advance(s.puffs, dt)
	s.motes = advance(s.motes, dt)
}

func advance(ps []Particle, dt time.Duration) []Particle {
	out := ps[:0]
	for _, p := range ps {
		p.age += dt
		if p.age >= p.lifetime {
			if !p.loop {
				continue
			}
			p.age %= p.lifetime
		}
		t := float64(p.age) / float64(p.lifetime)
		ease := tween.Power1Out(t)
		p.Pos = vmath.PAdd(p.origin, vmath.PScale(p.travel, ease))
		if !p.loop {
			p.Opacity = 1 - t
		}
		out = append(out, p)
	}
	return out
}

func (s *System) Ripples() []Ripple { return s.ripples }
func (s *System) Puffs() []Particle { return s.puffs }
func (s *System) Motes() []Particle { return s.motes }

// HandleEvent implements events.Handler
func (s *System) HandleEvent(_ time.Time, ev events.Event) {
	switch ev.Type {
	case events.EventRippleRequest:
		if p, ok := ev.Payload.(*events.RipplePayload); ok {
			s.Ripple(p.Radius)
		}
	case events.EventDustRequest:
		if p, ok := ev.Payload.(*events.DustPayload); ok {
			s.Puff(p.XPercent, p.YPercent)
		}
	}
}

// EventTypes implements events.Handler
func (s *System) EventTypes() []events.EventType {
	return []events.EventType{events.EventRippleRequest, events.EventDustRequest}
}
