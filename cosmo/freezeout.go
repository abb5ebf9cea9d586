package cosmo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"

	"github.com/albertmrtnz25/galkit/math/special"
)

// The freeze-out integral
//
//	I(x) = int_0^x y^(5/2) e^(-y) K1(y)/K2(y) dy
//
// shows up when thermally averaging an annihilation cross section over a
// relativistic Maxwell-Boltzmann distribution. The integrand dies off as
// e^(-y), so I(x) saturates once x is a few tens.

// FreezeOutIntegrand evaluates y^(5/2) e^(-y) K1(y)/K2(y). It is zero at
// y <= 0; the Bessel ratio tends to y/2 there, so the integrand vanishes
// like y^(7/2)/2.
func FreezeOutIntegrand(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return math.Pow(y, 2.5) * math.Exp(-y) * special.KRatio(y)
}

// FreezeOutIntegral returns I(x), evaluated with fixed Gauss-Legendre
// quadrature. I(x) = 0 for x <= 0.
func FreezeOutIntegral(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return quad.Fixed(FreezeOutIntegrand, 0, x, quadPoints, quad.Legendre{}, 0)
}

// FreezeOutCurve samples I(x) at n evenly spaced points in [0, xMax]. The
// integral is accumulated panel by panel rather than restarted from zero at
// every sample.
func FreezeOutCurve(xMax float64, n int) (xs, is []float64) {
	xs = floats.Span(make([]float64, n), 0, xMax)
	is = make([]float64, n)
	for i := 1; i < n; i++ {
		panel := quad.Fixed(
			FreezeOutIntegrand, xs[i-1], xs[i], 15, quad.Legendre{}, 0,
		)
		is[i] = is[i-1] + panel
	}
	return xs, is
}

// Plateau estimates the saturated value of I(x) by averaging the samples
// with x > min, mirroring the by-eye "stable for x >> 1" estimate. It
// returns NaN when no sample lies above min.
func Plateau(xs, is []float64, min float64) float64 {
	if len(xs) != len(is) {
		panic("cosmo: mismatched sample lengths")
	}

	tail := []float64{}
	for i := range xs {
		if xs[i] > min {
			tail = append(tail, is[i])
		}
	}
	if len(tail) == 0 {
		return math.NaN()
	}
	return stat.Mean(tail, nil)
}
