// Package panzoom composes the motion engines into the chart's
// pan/zoom behavior: momentum panning through an inertial offset,
// anchor-preserving zoom through a scale tween plus a transient
// offset-correction tween that keeps the content under the cursor
// visually stationary while both animate.
package panzoom

import (
	"time"

	"github.com/san-kum/glidechart/internal/frame"
	"github.com/san-kum/glidechart/internal/motion"
)

// Config tunes the three engines. Zero fields fall back to defaults.
type Config struct {
	// ZoomDuration is the tween length for scale and anchor
	// correction changes.
	ZoomDuration time.Duration
	// Easing shapes both zoom tweens.
	Easing motion.Easing
	// Zeta is the coasting damping factor (fraction of velocity
	// removed per second); Threshold the speed at which coasting
	// stops, both in content units.
	Zeta      float64
	Threshold float64
}

const (
	DefaultZoomDuration = 300 * time.Millisecond
	DefaultZeta         = 4.0
	DefaultThreshold    = 2.0
)

// Coordinator owns the animated view transform of one chart: a scale
// factor in [1,∞), an inertial pan offset, and an in-flight zoom
// anchor correction not yet folded into the offset. The rendered
// offset is always clamped to [-(width*(scale-1)), 0].
type Coordinator struct {
	scale      *motion.Tween
	offset     *motion.Inertia
	correction *motion.Tween
}

func New(sched frame.Scheduler, clock frame.Clock, cfg Config) *Coordinator {
	if cfg.ZoomDuration <= 0 {
		cfg.ZoomDuration = DefaultZoomDuration
	}
	if cfg.Zeta <= 0 {
		cfg.Zeta = DefaultZeta
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Coordinator{
		scale:      motion.NewTween(sched, clock, 1, cfg.ZoomDuration, cfg.Easing),
		offset:     motion.NewInertia(sched, clock, 0, cfg.Zeta, cfg.Threshold),
		correction: motion.NewTween(sched, clock, 0, cfg.ZoomDuration, cfg.Easing),
	}
}

// Scale is the current animated scale factor, >= 1.
func (c *Coordinator) Scale() float64 { return c.scale.Value() }

// ScaleTarget is the scale the current zoom animation is heading for.
func (c *Coordinator) ScaleTarget() float64 { return c.scale.Target() }

// Offset is the authoritative pan offset, excluding any in-flight
// anchor correction and unclamped.
func (c *Coordinator) Offset() float64 { return c.offset.Value() }

// Mode exposes the pan channel's motion state for status display.
func (c *Coordinator) Mode() motion.Mode { return c.offset.Mode() }

// Animating reports whether any of the three channels still has a
// frame callback pending.
func (c *Coordinator) Animating() bool {
	return c.scale.Animating() || c.correction.Animating() || c.offset.Mode() != motion.Idle
}

// EffectiveOffset is the render-ready offset for a viewport of the
// given width: pan offset plus anchor correction, clamped so the
// scaled content always covers the viewport.
func (c *Coordinator) EffectiveOffset(width float64) float64 {
	if width <= 0 {
		return 0
	}
	return clampOffset(c.offset.Value()+c.correction.Value(), width, c.scale.Value())
}

// Pan shifts the view by delta content units. Any leftover anchor
// correction from a recent zoom is folded into the pan baseline first
// so the two channels never double-count.
func (c *Coordinator) Pan(delta, width float64) {
	if width <= 0 {
		return
	}
	if corr := c.correction.Value(); corr != 0 {
		c.offset.ForceTo(c.offset.Target() + corr)
		c.correction.Snap(0)
	}
	c.offset.ForceTo(clampOffset(c.offset.Target()+delta, width, c.scale.Value()))
}

// ZoomAt changes the scale target by deltaScale while keeping the
// content under viewport position clickX visually stationary. The
// scale and the compensating offset animate together when animate is
// true, and jump otherwise. Scale never drops below 1; the correction
// uses the clamped scale change so a zoom-out at minimum scale cannot
// accumulate phantom correction.
func (c *Coordinator) ZoomAt(deltaScale, width, clickX float64, animate bool) {
	if width <= 0 {
		return
	}
	// Fraction of the visible scaled content under the cursor:
	// 0 at the left edge of the virtual content, 1 at the right.
	alpha := (clickX - c.offset.Value() - c.correction.Value()) / (width * c.scale.Value())

	newScale := c.scale.Target() + deltaScale
	if newScale < 1 {
		newScale = 1
	}
	applied := newScale - c.scale.Target()
	corr := c.correction.Value() - alpha*applied*width

	if animate {
		c.scale.SetTarget(newScale)
		c.correction.SetTarget(corr)
		return
	}
	c.scale.Snap(newScale)
	c.correction.Snap(corr)
}

// Reset snaps the view back to unity scale at the origin, at rest.
func (c *Coordinator) Reset() {
	c.scale.Snap(1)
	c.correction.Snap(0)
	c.offset.Snap(0)
}

// Stop cancels every pending frame callback. The coordinator must not
// be used after Stop.
func (c *Coordinator) Stop() {
	c.scale.Stop()
	c.correction.Stop()
	c.offset.Stop()
}

func clampOffset(v, width, scale float64) float64 {
	min := -(width * (scale - 1))
	if v < min {
		return min
	}
	if v > 0 {
		return 0
	}
	return v
}
