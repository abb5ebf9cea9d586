package main

import (
	"encoding/binary"
	"log"
	"math"
	"strings"

	"github.com/albertmrtnz25/galkit/analyze"
	"github.com/albertmrtnz25/galkit/io"
	"github.com/albertmrtnz25/galkit/plot"
	"github.com/albertmrtnz25/galkit/render"
	"github.com/albertmrtnz25/galkit/snapshot"
)

func snapshotOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func diskVideoMain(con *io.DiskVideoConfig) {
	proj, err := render.ParseProjection(con.Projection)
	if err != nil {
		log.Fatal(err.Error())
	}

	opt := render.SequenceOptions{
		FrameOptions: render.FrameOptions{
			Size:       con.Size,
			Limit:      con.Limit,
			VLimit:     con.VLimit,
			Projection: proj,
		},
		FPS:      con.FPS,
		FrameDir: con.FrameDir,
	}
	if strings.EqualFold(con.Type, "all") {
		opt.All = true
	} else {
		t, err := snapshot.ParseType(con.Type)
		if err != nil {
			log.Fatal(err.Error())
		}
		opt.Type = t
	}

	order := snapshotOrder(con.BigEndian)
	if err := render.Sequence(con.Input, con.Output, order, opt); err != nil {
		log.Fatal(err.Error())
	}
}

func diskStructureMain(con *io.DiskStructureConfig) {
	t, err := snapshot.ParseType(con.Type)
	if err != nil {
		log.Fatal(err.Error())
	}
	order := snapshotOrder(con.BigEndian)

	ext, err := analyze.ExtentSeries(con.Input, t, order)
	if err != nil {
		log.Fatal(err.Error())
	}

	times, axes := extentCurves(ext)

	// An x-y asymmetry growing with time is the bar instability
	// signature, so the axes stay separate.
	fig := plot.NewFigure("Disk extent", "t", "std of position")
	fig.Add("x", times, axes[0])
	fig.Add("y", times, axes[1])
	fig.Add("z", times, axes[2])
	if err := fig.SaveBackend(con.Backend, con.Output); err != nil {
		log.Fatal(err.Error())
	}

	// The scale height profile of the last readable snapshot goes next
	// to the extent figure.
	last, err := analyze.LastReadable(con.Input, order)
	if err != nil {
		log.Printf("skipping scale heights: %v", err)
		return
	}

	rs, hz := analyze.ScaleHeights(last.Part(t).X, con.RMax, con.Bins)
	rsOK, hzOK := []float64{}, []float64{}
	for i := range rs {
		if !math.IsNaN(hz[i]) {
			rsOK = append(rsOK, rs[i])
			hzOK = append(hzOK, hz[i])
		}
	}
	if len(rsOK) < 2 {
		log.Printf("too few populated rings for a scale height figure")
		return
	}

	hFig := plot.NewFigure("Scale height", "R", "h_z(R)")
	hFig.AddScatter("final snapshot", rsOK, hzOK)
	if err := hFig.SaveBackend(con.Backend, heightsFile(con.Output)); err != nil {
		log.Fatal(err.Error())
	}
}

// extentCurves splits an extent series into per axis time series.
func extentCurves(ext []analyze.Extent) (times []float64, axes [3][]float64) {
	times = make([]float64, len(ext))
	for axis := 0; axis < 3; axis++ {
		axes[axis] = make([]float64, len(ext))
	}
	for i, e := range ext {
		times[i] = e.Time
		for axis := 0; axis < 3; axis++ {
			axes[axis][i] = e.Std[axis]
		}
	}
	return times, axes
}

// heightsFile names the scale height figure after the extent figure.
func heightsFile(output string) string {
	ext := ".png"
	base := output
	if n := len(output) - len(ext); n > 0 && output[n:] == ext {
		base = output[:n]
	}
	return base + "_heights" + ext
}
