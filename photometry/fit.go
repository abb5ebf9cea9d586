package photometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PogsonScale is 2.5 log10(e), the factor relating the magnitude slope of
// an exponential disk to its scale length: mu(r) = mu0 + (PogsonScale/H) r.
var PogsonScale = 2.5 * math.Log10(math.E)

// DiskFit is the result of fitting mu(r) = mu0 + slope*r to one band of a
// profile. H is the exponential scale length implied by the slope, with a
// 1-sigma uncertainty propagated from the slope error.
type DiskFit struct {
	Band string

	Mu0, Mu0Err     float64
	Slope, SlopeErr float64

	HArcsec, HArcsecErr float64
	HKpc, HKpcErr       float64
}

// linearFit performs an ordinary least-squares fit y = alpha + beta*x and
// returns the coefficients along with their standard errors, estimated from
// the residual variance.
func linearFit(xs, ys []float64) (alpha, beta, alphaErr, betaErr float64) {
	alpha, beta = stat.LinearRegression(xs, ys, nil, false)

	n := float64(len(xs))
	xMean := stat.Mean(xs, nil)

	var ss, sxx float64
	for i := range xs {
		r := ys[i] - (alpha + beta*xs[i])
		ss += r * r
		dx := xs[i] - xMean
		sxx += dx * dx
	}
	s2 := ss / (n - 2)

	betaErr = math.Sqrt(s2 / sxx)
	alphaErr = math.Sqrt(s2 * (1/n + xMean*xMean/sxx))
	return alpha, beta, alphaErr, betaErr
}

// FitDisk fits an exponential disk to one band of the profile and converts
// the magnitude slope into a scale length. kpcPerArcsec sets the physical
// scale at the galaxy's distance.
func FitDisk(p *Profile, band string, kpcPerArcsec float64) (*DiskFit, error) {
	mu, ok := p.Mu[band]
	if !ok {
		return nil, fmt.Errorf("photometry: profile has no %q band", band)
	}
	if len(p.SMA) < 3 {
		return nil, fmt.Errorf(
			"photometry: %d points is too few to fit band %q",
			len(p.SMA), band,
		)
	}

	mu0, slope, mu0Err, slopeErr := linearFit(p.SMA, mu)
	if slope <= 0 {
		return nil, fmt.Errorf(
			"photometry: band %q brightens outward (slope %g), not a disk",
			band, slope,
		)
	}

	f := &DiskFit{
		Band: band,
		Mu0:  mu0, Mu0Err: mu0Err,
		Slope: slope, SlopeErr: slopeErr,
	}
	// H = C/slope, so err(H) = C/slope^2 * err(slope).
	f.HArcsec = PogsonScale / slope
	f.HArcsecErr = PogsonScale / (slope * slope) * slopeErr
	f.HKpc = f.HArcsec * kpcPerArcsec
	f.HKpcErr = f.HArcsecErr * kpcPerArcsec

	return f, nil
}

// FitAllDisks fits every band in the profile, in header order.
func FitAllDisks(p *Profile, kpcPerArcsec float64) ([]*DiskFit, error) {
	fits := make([]*DiskFit, 0, len(p.Bands))
	for _, band := range p.Bands {
		f, err := FitDisk(p, band, kpcPerArcsec)
		if err != nil {
			return nil, err
		}
		fits = append(fits, f)
	}
	return fits, nil
}

// WindowFit is a linear fit restricted to a fraction of the profile's
// radial span, used to trace the disk region of a surface-brightness
// profile while skipping the bulge-dominated center and the noisy
// outskirts.
type WindowFit struct {
	Band             string
	Intercept, Slope float64
	// Low and High are the radial bounds, in arcsec, that the fit used.
	Low, High float64
}

// FitWindow fits mu(r) over the radial window [lowFrac, highFrac],
// expressed as fractions of the full radial span of the data.
func FitWindow(p *Profile, band string, lowFrac, highFrac float64) (*WindowFit, error) {
	mu, ok := p.Mu[band]
	if !ok {
		return nil, fmt.Errorf("photometry: profile has no %q band", band)
	}
	if lowFrac < 0 || highFrac > 1 || lowFrac >= highFrac {
		return nil, fmt.Errorf(
			"photometry: bad fit window [%g, %g]", lowFrac, highFrac,
		)
	}

	rMin, rMax := p.SMA[0], p.SMA[len(p.SMA)-1]
	low := rMin + lowFrac*(rMax-rMin)
	high := rMin + highFrac*(rMax-rMin)

	var xs, ys []float64
	for i, r := range p.SMA {
		if r >= low && r <= high {
			xs = append(xs, r)
			ys = append(ys, mu[i])
		}
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf(
			"photometry: window [%g, %g] arcsec contains %d points",
			low, high, len(xs),
		)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return &WindowFit{
		Band: band, Intercept: intercept, Slope: slope,
		Low: low, High: high,
	}, nil
}

// Eval returns the fitted surface brightness at radius r.
func (f *WindowFit) Eval(r float64) float64 {
	return f.Intercept + f.Slope*r
}
