package photometry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Profile is a radial surface-brightness profile of a galaxy. SMA is the
// semi-major axis of each isophote in arcsec and Mu maps a band name (the
// "r" of a "mu_r" column) to surface brightnesses in mag/arcsec^2. Rows are
// sorted by SMA.
type Profile struct {
	SMA   []float64
	Bands []string
	Mu    map[string][]float64
}

// ReadProfile parses a photometry table in CSV form. The header row must
// contain an SMA column and one or more mu_<band> columns; other columns
// are ignored. Band order follows the header.
func ReadProfile(r io.Reader) (*Profile, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("photometry: profile has no data rows")
	}

	header := records[0]
	smaCol := -1
	bandCols := []int{}
	bands := []string{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, "SMA"):
			smaCol = i
		case strings.HasPrefix(name, "mu_"):
			bandCols = append(bandCols, i)
			bands = append(bands, strings.TrimPrefix(name, "mu_"))
		}
	}
	if smaCol == -1 {
		return nil, fmt.Errorf("photometry: no SMA column in header %q", header)
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("photometry: no mu_* columns in header %q", header)
	}

	p := &Profile{Bands: bands, Mu: map[string][]float64{}}
	for i, row := range records[1:] {
		sma, err := strconv.ParseFloat(strings.TrimSpace(row[smaCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("photometry: row %d: %v", i+1, err)
		}
		p.SMA = append(p.SMA, sma)
		for j, col := range bandCols {
			mu, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, fmt.Errorf("photometry: row %d: %v", i+1, err)
			}
			p.Mu[bands[j]] = append(p.Mu[bands[j]], mu)
		}
	}

	p.sortBySMA()
	return p, nil
}

// ReadProfileFile reads a CSV profile from disk.
func ReadProfileFile(file string) (*Profile, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProfile(f)
}

func (p *Profile) sortBySMA() {
	idx := make([]int, len(p.SMA))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return p.SMA[idx[i]] < p.SMA[idx[j]]
	})

	reorder := func(xs []float64) []float64 {
		out := make([]float64, len(xs))
		for i, j := range idx {
			out[i] = xs[j]
		}
		return out
	}

	p.SMA = reorder(p.SMA)
	for _, band := range p.Bands {
		p.Mu[band] = reorder(p.Mu[band])
	}
}

// HasBand reports whether the profile contains the given band.
func (p *Profile) HasBand(band string) bool {
	_, ok := p.Mu[band]
	return ok
}
