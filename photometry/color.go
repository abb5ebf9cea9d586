package photometry

import (
	"fmt"
	"math"
)

// ColorProfile is a radial color-index profile, the magnitude difference of
// two bands at each radius. Smooth holds a centered rolling mean of the
// index; entries whose window falls off the ends of the data are NaN.
type ColorProfile struct {
	SMA    []float64
	Index  []float64
	Smooth []float64

	// Blue and Red name the two bands: Index = mu_blue - mu_red.
	Blue, Red string
}

// ColorIndex computes the blue-red color profile (e.g. g - r). A window of
// three samples is used for smoothing, matching the noise level typical of
// isophote photometry.
func (p *Profile) ColorIndex(blue, red string) (*ColorProfile, error) {
	muB, ok := p.Mu[blue]
	if !ok {
		return nil, fmt.Errorf("photometry: profile has no %q band", blue)
	}
	muR, ok := p.Mu[red]
	if !ok {
		return nil, fmt.Errorf("photometry: profile has no %q band", red)
	}

	c := &ColorProfile{
		SMA:   p.SMA,
		Index: make([]float64, len(p.SMA)),
		Blue:  blue, Red: red,
	}
	for i := range c.Index {
		c.Index[i] = muB[i] - muR[i]
	}
	c.Smooth = RollingMean(c.Index, 3)
	return c, nil
}

// RollingMean returns a centered moving average of xs. The window must be
// odd; positions where the window does not fit are NaN.
func RollingMean(xs []float64, window int) []float64 {
	if window < 1 || window%2 == 0 {
		panic("photometry: rolling-mean window must be odd and positive")
	}

	half := window / 2
	out := make([]float64, len(xs))
	for i := range out {
		if i < half || i+half >= len(xs) {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - half; j <= i+half; j++ {
			sum += xs[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// Gradient is the color difference between the outermost and innermost
// radii. A larger index means redder, so a positive gradient means the
// outskirts are redder than the center.
func (c *ColorProfile) Gradient() float64 {
	return c.Index[len(c.Index)-1] - c.Index[0]
}

// TrendLabel classifies the profile the way the color diagram annotates
// it: a center redder than the outskirts points to a classical bulge, the
// reverse to outside-in growth.
func (c *ColorProfile) TrendLabel() string {
	if c.Gradient() > 0 {
		return "reddening outward (outside-in growth?)"
	}
	return "red center (classical bulge)"
}
