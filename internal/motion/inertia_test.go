package motion_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glidechart/internal/frame"
	"github.com/san-kum/glidechart/internal/motion"
)

var _ = Describe("Inertia", func() {
	var sim *frame.Simulator

	BeforeEach(func() {
		sim = frame.NewSimulator()
	})

	It("pins position synchronously on ForceTo", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		in.ForceTo(42)
		Expect(in.Value()).To(Equal(42.0))
		Expect(in.Target()).To(Equal(42.0))
		Expect(in.Mode()).To(Equal(motion.Forcing))
	})

	It("treats the first frame as velocity zero and settles immediately", func() {
		// forceTo(100); first callback is a first sample so the
		// derivative is discarded; the following coast step sees
		// zero velocity and stops at exactly 100.
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		in.ForceTo(100)
		sim.Advance(100 * time.Millisecond)
		Expect(in.Velocity()).To(BeZero())
		Expect(in.Value()).To(Equal(100.0))
		Expect(in.Mode()).To(Equal(motion.Coasting))

		sim.Advance(100 * time.Millisecond)
		Expect(in.Value()).To(Equal(100.0))
		Expect(in.Velocity()).To(BeZero())
		Expect(in.Mode()).To(Equal(motion.Idle))
		Expect(sim.Pending()).To(BeZero())
	})

	It("guards against a zero dt between samples", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		in.ForceTo(50)
		sim.Advance(16 * time.Millisecond)
		in.ForceTo(60)
		sim.Advance(0) // same timestamp as the previous sample
		Expect(in.Velocity()).To(BeZero())
	})

	It("derives velocity from per-frame forcing and coasts on release", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		step := 16 * time.Millisecond
		for i := 1; i <= 5; i++ {
			in.ForceTo(float64(i) * 10)
			sim.Advance(step)
		}
		// 10 units per 16ms frame = 625 units/s at release.
		Expect(in.Velocity()).To(BeNumerically("~", 625, 1e-9))
		Expect(in.Mode()).To(Equal(motion.Coasting))

		released := in.Value()
		frames := sim.Run(step, 10000)
		Expect(frames).To(BeNumerically("<", 10000), "coasting must settle")
		Expect(in.Mode()).To(Equal(motion.Idle))
		Expect(in.Velocity()).To(BeZero())
		Expect(in.Value()).To(BeNumerically(">", released), "momentum carries past the release point")
		Expect(in.Value()).To(Equal(in.Target()))
	})

	It("writes integer positions while coasting", func() {
		in := motion.NewInertia(sim, sim, 0, 5, 1)
		step := 16 * time.Millisecond
		in.ForceTo(3)
		sim.Advance(step)
		in.ForceTo(7)
		sim.Advance(step)
		for in.Mode() == motion.Coasting {
			sim.Advance(step)
			Expect(in.Value()).To(Equal(math.Round(in.Value())))
		}
	})

	It("decays velocity by zeta per second", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		step := 100 * time.Millisecond
		in.ForceTo(0)
		sim.Advance(step)
		in.ForceTo(100)
		sim.Advance(step) // velocity sampled: 1000 units/s
		Expect(in.Velocity()).To(BeNumerically("~", 1000, 1e-9))

		sim.Advance(step) // one coast step: v -= v * 10 * 0.1
		Expect(in.Velocity()).To(BeNumerically("~", 0, 1e-9))
	})

	It("coalesces rapid forcing into one sample per frame", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		in.ForceTo(10)
		in.ForceTo(20)
		in.ForceTo(30)
		Expect(sim.Pending()).To(Equal(1), "only the newest step may be pending")
		sim.Advance(16 * time.Millisecond)
		Expect(in.Value()).To(Equal(30.0))
	})

	It("mutates nothing after Stop", func() {
		in := motion.NewInertia(sim, sim, 0, 10, 1)
		in.ForceTo(25)
		in.Stop()
		sim.Advance(16 * time.Millisecond)
		Expect(in.Value()).To(Equal(25.0))
		Expect(sim.Pending()).To(BeZero())
	})
})
