package main

import (
	"fmt"
	"log"

	"github.com/albertmrtnz25/galkit/galaxy"
	"github.com/albertmrtnz25/galkit/io"
	"github.com/albertmrtnz25/galkit/plot"
)

func rotationCurveMain(con *io.RotationCurveConfig) {
	curve, err := galaxy.ReadRotationCurve(con.Input, con.VelScale, con.RadScale)
	if err != nil {
		log.Fatal(err.Error())
	}

	fig := plot.NewFigure("Rotation curve", "R [kpc]", "v [km/s]")
	fig.Add("total", curve.R, curve.Total)
	fig.AddDashed("disk", curve.R, curve.Disk)
	fig.AddDashed("bulge", curve.R, curve.Bulge)
	fig.AddDashed("halo", curve.R, curve.Halo)
	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}

func massProfileMain(con *io.MassProfileConfig) {
	prof, err := galaxy.ReadMassProfile(con.Input, con.VelScale)
	if err != nil {
		log.Fatal(err.Error())
	}

	n := len(prof.R)
	if n > 0 {
		log.Printf(
			"M(<%g kpc) = %.3g Msun", prof.R[n-1], prof.Total[n-1],
		)
	}

	fig := plot.NewFigure("Enclosed mass", "R [kpc]", "M(<R) [Msun]")
	fig.Add("total", prof.R, prof.Total)
	fig.AddDashed("disk", prof.R, prof.Disk)
	fig.AddDashed("bulge", prof.R, prof.Bulge)
	fig.AddDashed("halo", prof.R, prof.Halo)
	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}

func toomreMain(con *io.ToomreConfig) {
	prof, err := galaxy.ReadToomreProfile(con.Input)
	if err != nil {
		log.Fatal(err.Error())
	}

	r, q := prof.MinQ()
	fmt.Printf("Minimum Q = %.3f at R = %.2f\n", q, r)
	for _, rng := range prof.UnstableRanges() {
		fmt.Printf("Unstable for R in [%.2f, %.2f]\n", rng[0], rng[1])
	}
	if !prof.Unstable() {
		fmt.Println("The disk is stable at every tabulated radius.")
	}

	critical := make([]float64, len(prof.R))
	for i := range critical {
		critical[i] = galaxy.CriticalQ
	}

	fig := plot.NewFigure("Toomre stability", "R", "Q")
	fig.Add("Q(R)", prof.R, prof.Q)
	fig.AddDashed("Q = 1", prof.R, critical)
	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}
