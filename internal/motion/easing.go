package motion

import "math"

// Easing maps normalized time t in [0,1] to progress in [0,1], with
// f(0)=0 and f(1)=1.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func QuadIn(t float64) float64  { return t * t }
func QuadOut(t float64) float64 { return t * (2 - t) }
func QuadInOut(t float64) float64 {
	return inOut(t, 2)
}

func CubicIn(t float64) float64 { return t * t * t }
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
func CubicInOut(t float64) float64 { return inOut(t, 3) }

func QuartIn(t float64) float64 { return t * t * t * t }
func QuartOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}
func QuartInOut(t float64) float64 { return inOut(t, 4) }

func QuintIn(t float64) float64 { return t * t * t * t * t }
func QuintOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}
func QuintInOut(t float64) float64 { return inOut(t, 5) }

// inOut builds the symmetric ease-in-out of the degree-n power curve:
// the in half over [0,0.5], its point reflection over [0.5,1].
func inOut(t, n float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, n)
	}
	return 1 - 0.5*math.Pow(2*(1-t), n)
}

var easings = map[string]Easing{
	"linear":       Linear,
	"quad-in":      QuadIn,
	"quad-out":     QuadOut,
	"quad-in-out":  QuadInOut,
	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,
	"quart-in":     QuartIn,
	"quart-out":    QuartOut,
	"quart-in-out": QuartInOut,
	"quint-in":     QuintIn,
	"quint-out":    QuintOut,
	"quint-in-out": QuintInOut,
}

// ByName looks up an easing for config files and CLI flags.
func ByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// Names lists the registered easing names in no particular order.
func Names() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}
