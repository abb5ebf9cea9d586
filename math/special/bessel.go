package special

import (
	"math"
)

// Modified Bessel functions of the second kind, K_nu(x). The polynomial
// approximations are the standard Abramowitz & Stegun 9.8 fits, which are
// accurate to a relative error of a few times 1e-7 on both branches. Higher
// orders come from the upward recurrence
//     K_{n+1}(x) = K_{n-1}(x) + (2n/x) K_n(x),
// which is stable in the increasing direction.

// besselI0 returns I_0(x) for |x| < 3.75. Only needed by the small-x branch
// of K0.
func besselI0(x float64) float64 {
	t := x / 3.75
	t *= t
	return 1 + t*(3.5156229+t*(3.0899424+t*(1.2067492+
		t*(0.2659732+t*(0.0360768+t*0.0045813)))))
}

// besselI1 returns I_1(x) for |x| < 3.75. Only needed by the small-x branch
// of K1.
func besselI1(x float64) float64 {
	t := x / 3.75
	t *= t
	return x * (0.5 + t*(0.87890594+t*(0.51498869+t*(0.15084934+
		t*(0.02658733+t*(0.00301532+t*0.00032411))))))
}

// K0 returns the modified Bessel function of the second kind of order zero.
// K0 diverges logarithmically as x -> 0 and is infinite for x <= 0.
func K0(x float64) float64 {
	if x <= 0 {
		return math.Inf(+1)
	}
	if x <= 2 {
		t := x * x / 4
		return -math.Log(x/2)*besselI0(x) +
			(-0.57721566 + t*(0.42278420+t*(0.23069756+t*(0.03488590+
				t*(0.00262698+t*(0.00010750+t*0.00000740))))))
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) *
		(1.25331414 + t*(-0.07832358+t*(0.02189568+t*(-0.01062446+
			t*(0.00587872+t*(-0.00251540+t*0.00053208))))))
}

// K1 returns the modified Bessel function of the second kind of order one.
// K1 diverges as 1/x as x -> 0 and is infinite for x <= 0.
func K1(x float64) float64 {
	if x <= 0 {
		return math.Inf(+1)
	}
	if x <= 2 {
		t := x * x / 4
		return math.Log(x/2)*besselI1(x) +
			(1/x)*(1+t*(0.15443144+t*(-0.67278579+t*(-0.18156897+
				t*(-0.01919402+t*(-0.00110404+t*-0.00004686))))))
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) *
		(1.25331414 + t*(0.23498619+t*(-0.03655620+t*(0.01504268+
			t*(-0.00780353+t*(0.00325614+t*-0.00068245))))))
}

// Kn returns the modified Bessel function of the second kind of integer
// order n >= 0.
func Kn(n int, x float64) float64 {
	switch {
	case n < 0:
		panic("special: negative Bessel function order")
	case n == 0:
		return K0(x)
	case n == 1:
		return K1(x)
	}
	if x <= 0 {
		return math.Inf(+1)
	}

	km, k := K0(x), K1(x)
	for j := 1; j < n; j++ {
		km, k = k, km+float64(2*j)/x*k
	}
	return k
}

// KRatio returns K1(x)/K2(x) without forming the (potentially underflowing)
// individual scaled values separately. The ratio tends to 1 - 3/(2x) for
// large x and to x/2 for small x.
func KRatio(x float64) float64 {
	if x <= 0 {
		return 0
	}
	k1 := K1(x)
	// K2 = K0 + (2/x) K1
	k2 := K0(x) + 2/x*k1
	return k1 / k2
}
