package galaxy

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// CriticalQ is the classic threshold of Toomre's stability criterion: a
// rotating disk is locally unstable to axisymmetric perturbations where
// Q < 1.
const CriticalQ = 1.0

// ToomreProfile is a radial profile of Toomre's Q parameter. R is in kpc.
type ToomreProfile struct {
	R, Q []float64
}

// ReadToomreProfile reads a two-column (R, Q) table.
func ReadToomreProfile(file string) (*ToomreProfile, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("galaxy: %s contains no rows", file)
	}
	return &ToomreProfile{R: cols[0], Q: cols[1]}, nil
}

// MinQ returns the radius at which the profile is most unstable, along with
// the Q value there.
func (p *ToomreProfile) MinQ() (r, q float64) {
	r, q = p.R[0], p.Q[0]
	for i := range p.Q {
		if p.Q[i] < q {
			r, q = p.R[i], p.Q[i]
		}
	}
	return r, q
}

// UnstableRanges returns the radial intervals where Q < 1. Interval edges
// that fall between samples are located by linear interpolation; an
// interval still open at the outermost sample is closed there.
func (p *ToomreProfile) UnstableRanges() [][2]float64 {
	var (
		ranges [][2]float64
		start  float64
		open   bool
	)

	if p.Q[0] < CriticalQ {
		start, open = p.R[0], true
	}
	for i := 1; i < len(p.Q); i++ {
		q0, q1 := p.Q[i-1], p.Q[i]
		if q0 >= CriticalQ == (q1 >= CriticalQ) {
			continue
		}

		// Q crosses 1 somewhere in (R[i-1], R[i]).
		frac := (CriticalQ - q0) / (q1 - q0)
		r := p.R[i-1] + frac*(p.R[i]-p.R[i-1])
		if open {
			ranges = append(ranges, [2]float64{start, r})
			open = false
		} else {
			start, open = r, true
		}
	}
	if open {
		ranges = append(ranges, [2]float64{start, p.R[len(p.R)-1]})
	}

	return ranges
}

// Unstable reports whether any part of the disk violates the stability
// criterion.
func (p *ToomreProfile) Unstable() bool {
	_, q := p.MinQ()
	return q < CriticalQ
}
