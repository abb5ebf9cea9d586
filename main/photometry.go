package main

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/albertmrtnz25/galkit/io"
	"github.com/albertmrtnz25/galkit/photometry"
	"github.com/albertmrtnz25/galkit/plot"
)

// readProfile loads the configured profile, falling back to the built-in
// NGC 628 sample when no input is set.
func readProfile(con *io.SharedConfig) *photometry.Profile {
	if !con.ValidInput() {
		log.Printf("no 'Input' set, using the built-in NGC 628 profile")
		p, err := photometry.ReadProfile(strings.NewReader(photometry.SampleCSV))
		if err != nil {
			panic(err.Error())
		}
		return p
	}

	p, err := photometry.ReadProfileFile(con.Input)
	if err != nil {
		log.Fatal(err.Error())
	}
	return p
}

func brightnessMain(con *io.BrightnessConfig) {
	p := readProfile(&con.SharedConfig)

	bands := p.Bands
	if con.Bands != "" {
		bands = strings.Split(con.Bands, ",")
		for i := range bands {
			bands[i] = strings.TrimSpace(bands[i])
		}
	}

	fig := plot.NewFigure(
		"Surface brightness", "a [arcsec]", "mu [mag/arcsec^2]",
	)
	fig.InvertY = true

	muLo, muHi := math.Inf(1), math.Inf(-1)
	var low, high float64
	for _, band := range bands {
		if !p.HasBand(band) {
			log.Fatalf("The profile has no %q band.", band)
		}
		fig.AddScatter(band, p.SMA, p.Mu[band])

		w, err := photometry.FitWindow(p, band, con.InnerFrac, con.OuterFrac)
		if err != nil {
			log.Fatal(err.Error())
		}
		fig.Add(band+" fit",
			[]float64{w.Low, w.High},
			[]float64{w.Eval(w.Low), w.Eval(w.High)},
		)
		low, high = w.Low, w.High

		for _, mu := range p.Mu[band] {
			muLo = math.Min(muLo, mu)
			muHi = math.Max(muHi, mu)
		}
	}

	// The window boundaries, drawn as one bracket so the legend carries
	// a single entry.
	fig.AddDashed("fit window",
		[]float64{low, low, high, high},
		[]float64{muLo, muHi, muHi, muLo},
	)

	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}

func scaleLengthMain(con *io.ScaleLengthConfig) {
	p := readProfile(&con.SharedConfig)

	bands := p.Bands
	if con.Band != "" {
		bands = []string{con.Band}
	}

	fig := plot.NewFigure(
		"Exponential disk fits", "a [arcsec]", "mu [mag/arcsec^2]",
	)
	fig.InvertY = true

	var fits []*photometry.DiskFit
	for _, band := range bands {
		f, err := photometry.FitDisk(p, band, con.KpcPerArcsec)
		if err != nil {
			log.Fatal(err.Error())
		}
		fits = append(fits, f)

		fig.AddScatter(band, p.SMA, p.Mu[band])
		line := make([]float64, len(p.SMA))
		for i, r := range p.SMA {
			line[i] = f.Mu0 + f.Slope*r
		}
		fig.AddDashed(band+" fit", p.SMA, line)

		if con.WindowSet() {
			w, err := photometry.FitWindow(
				p, band, con.InnerFrac, con.OuterFrac,
			)
			if err != nil {
				log.Fatal(err.Error())
			}
			fig.Add(
				fmt.Sprintf("%s window [%.0f, %.0f]\"", band, w.Low, w.High),
				[]float64{w.Low, w.High},
				[]float64{w.Eval(w.Low), w.Eval(w.High)},
			)
			log.Printf(
				"%s windowed fit over [%.1f, %.1f] arcsec: H = %.2f arcsec",
				band, w.Low, w.High,
				photometry.PogsonScale/w.Slope,
			)
		}
	}

	for _, f := range fits {
		if con.ValidKpcPerArcsec() {
			fmt.Printf(
				"%s: H = %.2f +/- %.2f arcsec = %.2f +/- %.2f kpc\n",
				f.Band, f.HArcsec, f.HArcsecErr, f.HKpc, f.HKpcErr,
			)
		} else {
			fmt.Printf(
				"%s: H = %.2f +/- %.2f arcsec\n",
				f.Band, f.HArcsec, f.HArcsecErr,
			)
		}
	}
	fmt.Print(photometry.LaTeXTable(fits))

	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}

func colorGradientMain(con *io.ColorGradientConfig) {
	p := readProfile(&con.SharedConfig)

	c, err := p.ColorIndex(con.Blue, con.Red)
	if err != nil {
		log.Fatal(err.Error())
	}
	c.Smooth = photometry.RollingMean(c.Index, con.Smooth)

	fmt.Printf(
		"%s-%s from center to edge: %+.3f mag, %s\n",
		con.Blue, con.Red, c.Gradient(), c.TrendLabel(),
	)

	smaOK, smoothOK := []float64{}, []float64{}
	for i := range c.SMA {
		if !math.IsNaN(c.Smooth[i]) {
			smaOK = append(smaOK, c.SMA[i])
			smoothOK = append(smoothOK, c.Smooth[i])
		}
	}

	fig := plot.NewFigure(
		"Color profile", "a [arcsec]",
		fmt.Sprintf("%s - %s [mag]", con.Blue, con.Red),
	)
	fig.AddScatter("measured", c.SMA, c.Index)
	if len(smaOK) >= 2 {
		fig.Add("smoothed", smaOK, smoothOK)
	}
	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}
