package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmrtnz25/galkit/analyze"
	"github.com/albertmrtnz25/galkit/io"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestBrightnessWritesWindowedFit(t *testing.T) {
	// Default config: built-in profile, fit over [0.05, 0.85] of the
	// radial span, chart backend.
	wrap := io.DefaultBrightnessWrapper()
	con := &wrap.Brightness
	con.Output = filepath.Join(t.TempDir(), "brightness.png")

	brightnessMain(con)

	b, err := os.ReadFile(con.Output)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])
}

func TestScaleLengthWritesFigure(t *testing.T) {
	wrap := io.DefaultScaleLengthWrapper()
	con := &wrap.ScaleLength
	con.Band = "r"
	con.Output = filepath.Join(t.TempDir(), "scalelength.png")

	scaleLengthMain(con)

	b, err := os.ReadFile(con.Output)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])
}

func TestExtentCurves(t *testing.T) {
	ext := []analyze.Extent{
		{Time: 0, Std: [3]float64{3, 2, 1}},
		{Time: 1, Std: [3]float64{6, 4, 2}},
	}

	times, axes := extentCurves(ext)
	assert.Equal(t, []float64{0, 1}, times)
	assert.Equal(t, []float64{3, 6}, axes[0])
	assert.Equal(t, []float64{2, 4}, axes[1])
	assert.Equal(t, []float64{1, 2}, axes[2])
}

func TestHeightsFile(t *testing.T) {
	assert.Equal(t, "structure_heights.png", heightsFile("structure.png"))
	assert.Equal(t, "structure_heights.png", heightsFile("structure"))
}
