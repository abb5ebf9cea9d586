package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// minRingCount is the smallest particle count for which a ring's scale
// height is considered measurable. Rings with fewer particles return NaN.
const minRingCount = 10

// ScaleHeights estimates the vertical scale height of a disk as a function
// of cylindrical radius: particles are binned into rings of equal width out
// to rMax, and the scale height of each ring is the standard deviation of
// z within it. It returns the ring centers and heights; underpopulated
// rings hold NaN.
func ScaleHeights(x [][3]float32, rMax float64, bins int) (rs, hz []float64) {
	if bins < 1 || rMax <= 0 {
		panic("analyze: need a positive bin count and radius")
	}

	ringZ := make([][]float64, bins)
	width := rMax / float64(bins)

	for i := range x {
		px, py := float64(x[i][0]), float64(x[i][1])
		r := math.Hypot(px, py)
		bin := int(r / width)
		if r >= rMax || bin >= bins {
			continue
		}
		ringZ[bin] = append(ringZ[bin], float64(x[i][2]))
	}

	rs = make([]float64, bins)
	hz = make([]float64, bins)
	for i := range ringZ {
		rs[i] = width * (float64(i) + 0.5)
		if len(ringZ[i]) <= minRingCount {
			hz[i] = math.NaN()
			continue
		}
		hz[i] = stat.StdDev(ringZ[i], nil)
	}
	return rs, hz
}
