package motion

import (
	"time"

	"github.com/san-kum/glidechart/internal/frame"
)

// Tween animates one scalar toward a target over a fixed duration
// using an easing curve. When no animation is in flight, the current
// value equals the target.
type Tween struct {
	sched    frame.Scheduler
	clock    frame.Clock
	ease     Easing
	duration time.Duration

	current  float64
	target   float64
	startVal float64
	startAt  time.Time

	handle  frame.Handle
	pending bool
}

// NewTween creates an idle tween holding initial. duration must be
// positive; a nil easing defaults to QuadInOut.
func NewTween(sched frame.Scheduler, clock frame.Clock, initial float64, duration time.Duration, ease Easing) *Tween {
	if ease == nil {
		ease = QuadInOut
	}
	return &Tween{
		sched:    sched,
		clock:    clock,
		ease:     ease,
		duration: duration,
		current:  initial,
		target:   initial,
	}
}

func (t *Tween) Value() float64  { return t.current }
func (t *Tween) Target() float64 { return t.target }

// Animating reports whether a frame callback is pending.
func (t *Tween) Animating() bool { return t.pending }

// SetTarget starts animating toward v from the current value.
// Retargeting an in-flight animation to the same v is a no-op, so
// repeated identical requests don't restart the clock.
func (t *Tween) SetTarget(v float64) {
	if t.pending && v == t.target {
		return
	}
	t.startVal = t.current
	t.startAt = t.clock.Now()
	t.target = v
	if t.pending {
		t.sched.Cancel(t.handle)
	}
	t.handle = t.sched.Schedule(t.step)
	t.pending = true
}

// Snap cancels any in-flight animation and assigns v directly.
func (t *Tween) Snap(v float64) {
	if t.pending {
		t.sched.Cancel(t.handle)
		t.pending = false
	}
	t.current = v
	t.target = v
}

// Stop cancels the pending frame callback. The tween must not be used
// after Stop.
func (t *Tween) Stop() {
	if t.pending {
		t.sched.Cancel(t.handle)
		t.pending = false
	}
}

func (t *Tween) step(now time.Time) {
	elapsed := now.Sub(t.startAt)
	if elapsed >= t.duration {
		t.current = t.target
		t.pending = false
		return
	}
	frac := t.ease(float64(elapsed) / float64(t.duration))
	t.current = t.startVal + frac*(t.target-t.startVal)
	t.handle = t.sched.Schedule(t.step)
}
