package motion

import (
	"math"
	"time"

	"github.com/san-kum/glidechart/internal/frame"
)

// Mode is the inertial engine's motion state.
type Mode int

const (
	// Idle: at rest, velocity is zero.
	Idle Mode = iota
	// Forcing: position is driven directly by external input; the
	// next frame derives velocity as a finite difference.
	Forcing
	// Coasting: free-running motion under exponential velocity decay.
	Coasting
)

// Inertia moves one scalar under external forcing and lets it coast to
// rest when the forcing stops. While the caller drags, ForceTo pins
// the position and samples velocity once per frame; on release the
// sampled velocity decays by zeta per second until it drops below
// threshold.
type Inertia struct {
	sched frame.Scheduler
	clock frame.Clock

	// zeta is the fraction of velocity removed per second while
	// coasting; threshold is the speed below which coasting stops.
	zeta      float64
	threshold float64

	position float64
	target   float64
	velocity float64
	mode     Mode

	prevPos   float64
	prevAt    time.Time
	hasSample bool

	handle  frame.Handle
	pending bool
}

// NewInertia creates an idle engine at initial. zeta and threshold
// must be positive.
func NewInertia(sched frame.Scheduler, clock frame.Clock, initial, zeta, threshold float64) *Inertia {
	return &Inertia{
		sched:     sched,
		clock:     clock,
		zeta:      zeta,
		threshold: threshold,
		position:  initial,
		target:    initial,
		prevPos:   initial,
	}
}

func (n *Inertia) Value() float64  { return n.position }
func (n *Inertia) Target() float64 { return n.target }
func (n *Inertia) Mode() Mode      { return n.mode }

// Velocity is the current coasting speed in units per second.
func (n *Inertia) Velocity() float64 { return n.velocity }

// ForceTo pins position and target to v immediately and schedules a
// forcing step for the next frame. Rapid successive calls coalesce:
// each one replaces the pending step, so velocity is sampled at most
// once per display frame.
func (n *Inertia) ForceTo(v float64) {
	n.target = v
	n.position = v
	if n.pending {
		n.sched.Cancel(n.handle)
	}
	n.handle = n.sched.Schedule(n.forceStep)
	n.pending = true
	n.mode = Forcing
}

// Snap cancels any pending step and comes to rest at v. The next
// ForceTo starts from a fresh first sample, so the jump contributes
// no velocity.
func (n *Inertia) Snap(v float64) {
	if n.pending {
		n.sched.Cancel(n.handle)
		n.pending = false
	}
	n.position = v
	n.target = v
	n.prevPos = v
	n.velocity = 0
	n.hasSample = false
	n.mode = Idle
}

// Stop cancels the pending frame callback. The engine must not be
// used after Stop.
func (n *Inertia) Stop() {
	if n.pending {
		n.sched.Cancel(n.handle)
		n.pending = false
	}
}

// forceStep runs once on the frame after a ForceTo. It derives the
// release velocity from the distance covered since the previous
// sample, then hands over to coasting.
func (n *Inertia) forceStep(now time.Time) {
	dt := now.Sub(n.prevAt).Seconds()
	if !n.hasSample || dt <= 0 {
		// First sample: no usable derivative, and a near-zero dt
		// would blow velocity up. Start from rest instead.
		n.velocity = 0
	} else {
		n.velocity = (n.target - n.prevPos) / dt
	}
	n.prevPos = n.target
	n.prevAt = now
	n.hasSample = true
	n.position = n.target

	n.handle = n.sched.Schedule(n.coastStep)
	n.mode = Coasting
}

func (n *Inertia) coastStep(now time.Time) {
	dt := now.Sub(n.prevAt).Seconds()
	n.velocity -= n.velocity * n.zeta * dt
	next := math.Round(n.target + n.velocity*dt)
	n.prevPos = n.target
	n.prevAt = now
	n.target = next
	n.position = next

	if math.Abs(n.velocity) > n.threshold {
		n.handle = n.sched.Schedule(n.coastStep)
		return
	}
	n.velocity = 0
	n.mode = Idle
	n.pending = false
}
