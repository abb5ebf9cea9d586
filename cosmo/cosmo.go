package cosmo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// Model is the interface implemented by FLRW expansion models. Times are
// measured in Hubble times (1/H0), and the scale factor is normalized so
// that a = 1 today.
type Model interface {
	Name() string

	// Time returns the cosmic time at which the universe reaches scale
	// factor a.
	Time(a float64) float64

	// Age returns the age of the universe, i.e. Time(1).
	Age() float64
}

// EinsteinDeSitter is a flat, matter-only universe: OmegaM = 1, so
// a ~ t^(2/3) and the age is two thirds of a Hubble time.
type EinsteinDeSitter struct{}

func (EinsteinDeSitter) Name() string { return "Einstein-de Sitter" }

func (EinsteinDeSitter) Time(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return 2.0 / 3.0 * math.Pow(a, 1.5)
}

func (EinsteinDeSitter) Age() float64 { return 2.0 / 3.0 }

// Milne is an empty universe: OmegaM = OmegaL = 0. Expansion is linear and
// the age is exactly one Hubble time.
type Milne struct{}

func (Milne) Name() string { return "Milne" }

func (Milne) Time(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return a
}

func (Milne) Age() float64 { return 1 }

// LambdaCDM is a universe with pressureless matter and a cosmological
// constant. Curvature terms are not included, so OmegaM + OmegaL should sum
// to one for a physically consistent model, although the integration does
// not require it.
type LambdaCDM struct {
	OmegaM, OmegaL float64
}

// quadPoints sets the fixed Gauss-Legendre rule used for the Friedmann
// integral. The integrand has a sqrt(a) branch at the origin, so a generous
// point count is used to keep the low-a tail accurate.
const quadPoints = 201

func (m LambdaCDM) Name() string {
	return fmt.Sprintf("Lambda-CDM (OmegaM=%g, OmegaL=%g)", m.OmegaM, m.OmegaL)
}

// friedmann is the integrand of the Friedmann time integral,
// 1 / sqrt(OmegaM/x + OmegaL x^2).
func (m LambdaCDM) friedmann(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 / math.Sqrt(m.OmegaM/x+m.OmegaL*x*x)
}

func (m LambdaCDM) Time(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return quad.Fixed(m.friedmann, 0, a, quadPoints, quad.Legendre{}, 0)
}

func (m LambdaCDM) Age() float64 { return m.Time(1) }

// History samples a model's expansion history at n evenly spaced scale
// factors in [aMin, aMax] and returns the matching cosmic times and scale
// factors.
func History(m Model, aMin, aMax float64, n int) (ts, as []float64) {
	as = floats.Span(make([]float64, n), aMin, aMax)
	ts = make([]float64, n)
	for i, a := range as {
		ts[i] = m.Time(a)
	}
	return ts, as
}
