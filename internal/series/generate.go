package series

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Kinds lists the available synthetic series generators.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Generate builds a synthetic demo series of n samples. Generators
// that use randomness are seeded, so the same arguments reproduce the
// same series.
func Generate(kind string, n int, seed int64) (*Series, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown series kind: %s (available: %v)", kind, Kinds())
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}

	s := &Series{
		Name:   kind,
		Times:  make([]float64, n),
		Values: make([]float64, n),
	}
	const dt = 0.01
	for i := range s.Times {
		s.Times[i] = float64(i) * dt
	}
	gen(s.Values, dt, seed)
	return s, nil
}

var generators = map[string]func(out []float64, dt float64, seed int64){
	"sine":   genSine,
	"damped": genDamped,
	"walk":   genWalk,
	"lorenz": genLorenz,
}

func genSine(out []float64, dt float64, _ int64) {
	for i := range out {
		t := float64(i) * dt
		out[i] = math.Sin(2*math.Pi*t) + 0.4*math.Sin(6*math.Pi*t)
	}
}

// genDamped integrates a damped spring-mass (x'' = -k x - c x') with
// forward Euler.
func genDamped(out []float64, dt float64, _ int64) {
	const (
		k = 40.0
		c = 0.8
	)
	x, v := 2.0, 0.0
	for i := range out {
		out[i] = x
		a := -k*x - c*v
		v += a * dt
		x += v * dt
	}
}

func genWalk(out []float64, _ float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	x := 0.0
	for i := range out {
		out[i] = x
		x += rng.NormFloat64()
	}
}

// genLorenz records the x component of the Lorenz attractor,
// Euler-stepped from the classic sigma/rho/beta parameters.
func genLorenz(out []float64, dt float64, _ int64) {
	const (
		sigma = 10.0
		rho   = 28.0
		beta  = 8.0 / 3.0
	)
	x, y, z := 1.0, 1.0, 1.0
	for i := range out {
		out[i] = x
		dx := sigma * (y - x)
		dy := x*(rho-z) - y
		dz := x*y - beta*z
		x += dx * dt
		y += dy * dt
		z += dz * dt
	}
}
