package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRender(t *testing.T) {
	fig := NewFigure("rotation curve", "R [kpc]", "v [km/s]")
	fig.Add("total", []float64{1, 2, 3}, []float64{100, 120, 125})
	fig.AddDashed("disk", []float64{1, 2, 3}, []float64{60, 90, 100})
	fig.AddScatter("data", []float64{1, 2, 3}, []float64{99, 121, 124})

	b, err := fig.Render()
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])
}

func TestRenderInvertY(t *testing.T) {
	fig := NewFigure("profile", "a [arcsec]", "mu [mag]")
	fig.InvertY = true
	fig.Add("g", []float64{0, 50, 100}, []float64{18, 20, 24})

	b, err := fig.Render()
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])
}

func TestRenderErrors(t *testing.T) {
	_, err := NewFigure("empty", "x", "y").Render()
	assert.Error(t, err)

	fig := NewFigure("ragged", "x", "y")
	fig.Add("bad", []float64{1, 2}, []float64{1})
	_, err = fig.Render()
	assert.Error(t, err)

	fig = NewFigure("hollow", "x", "y")
	fig.Add("bad", nil, nil)
	_, err = fig.Render()
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fig.png")
	fig := NewFigure("t", "x", "y")
	fig.Add("line", []float64{0, 1}, []float64{0, 1})
	require.NoError(t, fig.Save(file))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])
}

func TestSaveBackend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fig.png")
	fig := NewFigure("t", "x", "y")
	fig.Add("line", []float64{0, 1}, []float64{0, 1})

	require.NoError(t, fig.SaveBackend("chart", file))
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b[:4])

	// The empty backend means chart.
	require.NoError(t, fig.SaveBackend("", file))

	err = fig.SaveBackend("gnuplot", file)
	assert.Error(t, err)

	// An invalid figure is rejected before any backend runs.
	empty := NewFigure("empty", "x", "y")
	assert.Error(t, empty.SaveBackend("chart", file))
	assert.Error(t, empty.SaveBackend("pyplot", file))
}

func TestPyplotFormat(t *testing.T) {
	assert.Equal(t, "b", pyplotFormat(0, Line{}))
	assert.Equal(t, "r--", pyplotFormat(1, Line{Dashed: true}))
	assert.Equal(t, "og", pyplotFormat(2, Line{Scatter: true}))
	// The color cycle wraps with the palette.
	assert.Equal(t, "b", pyplotFormat(len(pyplotColors), Line{}))
}

func TestYRange(t *testing.T) {
	fig := NewFigure("t", "x", "y")
	fig.Add("a", []float64{0, 1}, []float64{18, 24})
	fig.Add("b", []float64{0, 1}, []float64{16, 22})

	lo, hi := fig.yRange()
	assert.Equal(t, 16.0, lo)
	assert.Equal(t, 24.0, hi)
}

func TestPaletteCycles(t *testing.T) {
	fig := NewFigure("many", "x", "y")
	for i := 0; i < len(palette)+2; i++ {
		fig.Add("line", []float64{0, 1}, []float64{float64(i), float64(i + 1)})
	}
	_, err := fig.Render()
	assert.NoError(t, err)
}
