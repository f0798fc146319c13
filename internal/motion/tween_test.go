package motion_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glidechart/internal/frame"
	"github.com/san-kum/glidechart/internal/motion"
)

var _ = Describe("Tween", func() {
	var sim *frame.Simulator

	BeforeEach(func() {
		sim = frame.NewSimulator()
	})

	It("holds its initial value while idle", func() {
		tw := motion.NewTween(sim, sim, 3, 400*time.Millisecond, nil)
		Expect(tw.Value()).To(Equal(3.0))
		Expect(tw.Target()).To(Equal(3.0))
		Expect(tw.Animating()).To(BeFalse())
	})

	It("passes the quad-in-out midpoint", func() {
		// 0 -> 10 over 400ms; at 200ms elapsed the eased fraction
		// is exactly 0.5.
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, motion.QuadInOut)
		tw.SetTarget(10)
		sim.Advance(200 * time.Millisecond)
		Expect(tw.Value()).To(BeNumerically("~", 5, 1e-12))
		Expect(tw.Animating()).To(BeTrue())
	})

	It("completes exactly at the target once elapsed reaches the duration", func() {
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, nil)
		tw.SetTarget(10)
		sim.Advance(200 * time.Millisecond)
		sim.Advance(200 * time.Millisecond)
		Expect(tw.Value()).To(Equal(10.0))
		Expect(tw.Animating()).To(BeFalse())
		Expect(sim.Pending()).To(BeZero())
	})

	It("moves monotonically under a monotonic easing", func() {
		tw := motion.NewTween(sim, sim, 0, 500*time.Millisecond, motion.CubicInOut)
		tw.SetTarget(100)
		prev := tw.Value()
		for tw.Animating() {
			sim.Advance(50 * time.Millisecond)
			Expect(tw.Value()).To(BeNumerically(">=", prev))
			prev = tw.Value()
		}
		Expect(tw.Value()).To(Equal(100.0))
	})

	It("ignores a repeated SetTarget to the in-flight target", func() {
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, nil)
		tw.SetTarget(10)
		sim.Advance(100 * time.Millisecond)
		tw.SetTarget(10) // must not restart the clock
		sim.Advance(100 * time.Millisecond)
		sim.Advance(100 * time.Millisecond)
		sim.Advance(100 * time.Millisecond)
		// 400ms after the original SetTarget the animation is done;
		// a restarted one would still be in flight.
		Expect(tw.Value()).To(Equal(10.0))
		Expect(tw.Animating()).To(BeFalse())
	})

	It("restarts from the current value when retargeted mid-flight", func() {
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, nil)
		tw.SetTarget(10)
		sim.Advance(200 * time.Millisecond)
		mid := tw.Value()
		tw.SetTarget(-10)
		Expect(sim.Pending()).To(Equal(1), "retarget replaces the pending step")
		sim.Advance(400 * time.Millisecond)
		Expect(tw.Value()).To(Equal(-10.0))
		Expect(mid).To(BeNumerically(">", 0))
	})

	It("snaps directly, cancelling the in-flight animation", func() {
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, nil)
		tw.SetTarget(10)
		sim.Advance(100 * time.Millisecond)
		tw.Snap(7)
		Expect(tw.Value()).To(Equal(7.0))
		Expect(tw.Target()).To(Equal(7.0))
		Expect(tw.Animating()).To(BeFalse())
		sim.Advance(100 * time.Millisecond)
		Expect(tw.Value()).To(Equal(7.0), "no stale step may run after Snap")
	})

	It("mutates nothing after Stop", func() {
		tw := motion.NewTween(sim, sim, 0, 400*time.Millisecond, nil)
		tw.SetTarget(10)
		sim.Advance(100 * time.Millisecond)
		before := tw.Value()
		tw.Stop()
		sim.Advance(400 * time.Millisecond)
		Expect(tw.Value()).To(Equal(before))
		Expect(sim.Pending()).To(BeZero())
	})
})
