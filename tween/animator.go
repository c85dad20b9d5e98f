package tween

import (
	"time"
)

// Animator owns at most one running task for a single animated value
// Starting a task cancels the previous one first so there is one writer
type Animator struct {
	current Task
}

// Start cancels the running task and installs t
func (a *Animator) Start(t Task) {
	a.Cancel()
	a.current = t
}

// Cancel detaches the running task; it will not call back again
func (a *Animator) Cancel() {
	if a.current != nil {
		a.current.Cancel()
		a.current = nil
	}
}

// Active reports whether a task is running
func (a *Animator) Active() bool {
	return a.current != nil
}

// Tick advances the running task by dt
func (a *Animator) Tick(dt time.Duration) {
	t := a.current
	if t == nil {
		return
	}
	if t.Step(dt) && a.current == t {
		// A completion callback may have started a successor
		a.current = nil
	}
}
