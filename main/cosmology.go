package main

import (
	"fmt"
	"log"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/albertmrtnz25/galkit/cosmo"
	"github.com/albertmrtnz25/galkit/io"
	"github.com/albertmrtnz25/galkit/plot"
)

// aEps keeps the sampled expansion histories off the a = 0 singularity.
const aEps = 1e-4

func friedmannCompareMain(con *io.FriedmannCompareConfig) {
	lcdm := cosmo.LambdaCDM{OmegaM: con.OmegaM, OmegaL: con.OmegaL}
	models := []cosmo.Model{lcdm, cosmo.EinsteinDeSitter{}, cosmo.Milne{}}

	for _, m := range models {
		log.Printf("%s: age = %.4f / H0", m.Name(), m.Age())
	}

	// Today is a = 1, at each model's age.
	tMax := 0.0
	for _, m := range models {
		if t := m.Time(con.AMax); t > tMax {
			tMax = t
		}
	}

	switch con.Backend {
	case "chart":
		fig := plot.NewFigure(
			"Expansion history", "t [1/H0]", "a(t)",
		)
		for i, m := range models {
			ts, as := cosmo.History(m, aEps, con.AMax, con.Samples)
			if i == 0 {
				fig.Add(m.Name(), ts, as)
			} else {
				fig.AddDashed(m.Name(), ts, as)
			}
		}
		fig.AddDashed("today (a = 1)", []float64{0, tMax}, []float64{1, 1})
		if err := fig.Save(con.Output); err != nil {
			log.Fatal(err.Error())
		}
	case "pyplot":
		plt.Reset()
		plt.Figure()
		fmts := []string{"b", "r--", "g--"}
		for i, m := range models {
			ts, as := cosmo.History(m, aEps, con.AMax, con.Samples)
			plt.Plot(ts, as, fmts[i], plt.LW(2))
		}
		plt.Plot([]float64{0, tMax}, []float64{1, 1}, "k", plt.LW(1))
		plt.Title("Expansion history")
		plt.XLabel(`$t$ $[1/H_0]$`, plt.FontSize(16))
		plt.YLabel(`$a(t)$`, plt.FontSize(16))
		plt.Grid(plt.Axis("both"))
		plt.SaveFig(con.Output)
		plt.Execute()
	}
}

func freezeOutMain(con *io.FreezeOutConfig) {
	xs, is := cosmo.FreezeOutCurve(con.XMax, con.Samples)
	plateau := cosmo.Plateau(xs, is, con.PlateauMin)

	log.Printf("I(x) saturates at %.4f past x = %g", plateau, con.PlateauMin)
	fmt.Printf("I(infinity) = %.4f\n", plateau)

	level := make([]float64, len(xs))
	for i := range level {
		level[i] = plateau
	}

	switch con.Backend {
	case "chart":
		fig := plot.NewFigure(
			"Relic abundance integral", "x = m/T", "I(x)",
		)
		fig.Add("I(x)", xs, is)
		fig.AddDashed("plateau", xs, level)
		if err := fig.Save(con.Output); err != nil {
			log.Fatal(err.Error())
		}
	case "pyplot":
		plt.Reset()
		plt.Figure()
		plt.Plot(xs, is, "b", plt.LW(2))
		plt.Plot(xs, level, "k--", plt.LW(1))
		plt.Title("Relic abundance integral")
		plt.XLabel(`$x = m/T$`, plt.FontSize(16))
		plt.YLabel(`$I(x)$`, plt.FontSize(16))
		plt.XScale("log")
		plt.Grid(plt.Axis("both"))
		plt.SaveFig(con.Output)
		plt.Execute()
	}
}
