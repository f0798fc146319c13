package motion_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glidechart/internal/motion"
)

var _ = Describe("Easing", func() {
	all := map[string]motion.Easing{
		"linear":       motion.Linear,
		"quad-in":      motion.QuadIn,
		"quad-out":     motion.QuadOut,
		"quad-in-out":  motion.QuadInOut,
		"cubic-in":     motion.CubicIn,
		"cubic-out":    motion.CubicOut,
		"cubic-in-out": motion.CubicInOut,
		"quart-in":     motion.QuartIn,
		"quart-out":    motion.QuartOut,
		"quart-in-out": motion.QuartInOut,
		"quint-in":     motion.QuintIn,
		"quint-out":    motion.QuintOut,
		"quint-in-out": motion.QuintInOut,
	}

	It("fixes the endpoints", func() {
		for name, ease := range all {
			Expect(ease(0)).To(BeZero(), name)
			Expect(ease(1)).To(BeNumerically("~", 1, 1e-12), name)
		}
	})

	It("is monotonic on [0,1]", func() {
		for name, ease := range all {
			prev := ease(0)
			for i := 1; i <= 100; i++ {
				cur := ease(float64(i) / 100)
				Expect(cur).To(BeNumerically(">=", prev), name)
				prev = cur
			}
		}
	})

	It("makes the in-out variants symmetric about the midpoint", func() {
		for _, name := range []string{"quad-in-out", "cubic-in-out", "quart-in-out", "quint-in-out"} {
			ease := all[name]
			Expect(ease(0.5)).To(BeNumerically("~", 0.5, 1e-12), name)
			for i := 0; i <= 50; i++ {
				t := float64(i) / 100
				Expect(ease(t) + ease(1-t)).To(BeNumerically("~", 1, 1e-12), name)
			}
		}
	})

	It("resolves easings by name", func() {
		for _, name := range motion.Names() {
			_, ok := motion.ByName(name)
			Expect(ok).To(BeTrue(), name)
		}
		_, ok := motion.ByName("bounce")
		Expect(ok).To(BeFalse())
	})
})
