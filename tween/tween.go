// Package tween runs frame-driven, cancellable value animations
package tween

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/turntable/vmath"
)

// Task advances with frame time and reports completion
// Cancelled tasks never call back again
type Task interface {
	// Step advances by dt and returns true once finished
	Step(dt time.Duration) bool
	Cancel()
	Cancelled() bool
}

// Tween interpolates From → To over Duration
type Tween struct {
	From, To   float64
	Duration   time.Duration
	Ease       Ease
	OnUpdate   func(v float64)
	OnComplete func()

	elapsed   time.Duration
	done      bool
	cancelled bool
}

// Step implements Task
func (tw *Tween) Step(dt time.Duration) bool {
	if tw.cancelled || tw.done {
		return true
	}
	tw.elapsed += dt

	progress := 1.0
	if tw.Duration > 0 && tw.elapsed < tw.Duration {
		progress = float64(tw.elapsed) / float64(tw.Duration)
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	if tw.OnUpdate != nil {
		v := tw.To
		if progress < 1 {
			v = vmath.Lerp(tw.From, tw.To, ease(progress))
		}
		tw.OnUpdate(v)
	}

	if progress >= 1 {
		tw.done = true
		if tw.OnComplete != nil && !tw.cancelled {
			tw.OnComplete()
		}
	}
	return tw.done
}

func (tw *Tween) Cancel()         { tw.cancelled = true }
func (tw *Tween) Cancelled() bool { return tw.cancelled }

// Call runs fn once on its first step
func Call(fn func()) *Tween {
	return &Tween{OnComplete: fn}
}

// Delay completes after d without side effects
func Delay(d time.Duration) *Tween {
	return &Tween{Duration: d}
}

// Timeline runs tasks one after another
type Timeline struct {
	Tasks      []Task
	OnComplete func()

	current   int
	cancelled bool
}

// Sequence builds a timeline
func Sequence(tasks ...Task) *Timeline {
	return &Timeline{Tasks: tasks}
}

// Step implements Task; leftover time is not carried into the next segment
func (tl *Timeline) Step(dt time.Duration) bool {
	if tl.cancelled {
		return true
	}
	if tl.current < len(tl.Tasks) {
		if !tl.Tasks[tl.current].Step(dt) {
			return false
		}
		tl.current++
		if tl.current < len(tl.Tasks) {
			return false
		}
	}
	if tl.OnComplete != nil {
		tl.OnComplete()
		tl.OnComplete = nil
	}
	return true
}

func (tl *Timeline) Cancel() {
	tl.cancelled = true
	for _, t := range tl.Tasks {
		t.Cancel()
	}
}

func (tl *Timeline) Cancelled() bool { return tl.cancelled }

// Settle kicks a value away from Base with an impulse and lets an under-damped
// spring pull it back: overshoot, bounce, rest
type Settle struct {
	Base     float64
	Impulse  float64 // Initial velocity, units per second
	MaxTime  time.Duration
	OnUpdate func(v float64)

	spring    harmonica.Spring
	frame     time.Duration
	pos, vel  float64
	acc       time.Duration
	elapsed   time.Duration
	started   bool
	done      bool
	cancelled bool
}

// NewSettle creates a settle task integrated at fps
func NewSettle(base, impulse float64, fps int, frequency, damping float64, maxTime time.Duration, onUpdate func(float64)) *Settle {
	return &Settle{
		Base:     base,
		Impulse:  impulse,
		MaxTime:  maxTime,
		OnUpdate: onUpdate,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:    time.Second / time.Duration(fps),
	}
}

// Step implements Task; the spring integrates in fixed frames regardless of dt
func (s *Settle) Step(dt time.Duration) bool {
	if s.cancelled || s.done {
		return true
	}
	if !s.started {
		s.started = true
		s.pos = s.Base
		s.vel = s.Impulse
	}

	s.acc += dt
	s.elapsed += dt
	for s.acc >= s.frame {
		s.acc -= s.frame
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.Base)
	}

	if s.elapsed >= s.MaxTime {
		s.pos, s.vel = s.Base, 0
		s.done = true
	}
	if s.OnUpdate != nil {
		s.OnUpdate(s.pos)
	}
	return s.done
}

func (s *Settle) Cancel()         { s.cancelled = true }
func (s *Settle) Cancelled() bool { return s.cancelled }
