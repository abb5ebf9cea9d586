// Package plot renders line figures to PNG files with go-chart. It exists
// so the analysis commands can share one styling layer instead of each
// assembling chart structs by hand.
package plot

import (
	"bytes"
	"fmt"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// palette is cycled over the lines of a figure in order.
var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	drawing.Color{R: 255, G: 165, B: 0, A: 255},
	chart.ColorBlack,
	chart.ColorCyan,
}

// Line is one curve of a figure.
type Line struct {
	Name string
	X, Y []float64
	// Dashed draws the line with a dash pattern instead of solid.
	Dashed bool
	// Scatter draws markers at the samples with no connecting line.
	Scatter bool
}

// Figure is a complete single-panel line plot.
type Figure struct {
	Title          string
	XLabel, YLabel string
	Width, Height  int
	// InvertY flips the vertical axis, the astronomical convention for
	// magnitude axes where brighter is up.
	InvertY bool
	Lines   []Line
}

// NewFigure returns a figure with the default geometry.
func NewFigure(title, xLabel, yLabel string) *Figure {
	return &Figure{
		Title: title, XLabel: xLabel, YLabel: yLabel,
		Width: 800, Height: 600,
	}
}

// Add appends a solid line to the figure.
func (f *Figure) Add(name string, x, y []float64) *Figure {
	f.Lines = append(f.Lines, Line{Name: name, X: x, Y: y})
	return f
}

// AddDashed appends a dashed line to the figure.
func (f *Figure) AddDashed(name string, x, y []float64) *Figure {
	f.Lines = append(f.Lines, Line{Name: name, X: x, Y: y, Dashed: true})
	return f
}

// AddScatter appends an unconnected marker series to the figure.
func (f *Figure) AddScatter(name string, x, y []float64) *Figure {
	f.Lines = append(f.Lines, Line{Name: name, X: x, Y: y, Scatter: true})
	return f
}

func (f *Figure) check() error {
	if len(f.Lines) == 0 {
		return fmt.Errorf("plot: figure %q has no lines", f.Title)
	}
	for _, l := range f.Lines {
		if len(l.X) != len(l.Y) {
			return fmt.Errorf("plot: line %q has %d x values and %d y values",
				l.Name, len(l.X), len(l.Y))
		}
		if len(l.X) == 0 {
			return fmt.Errorf("plot: line %q is empty", l.Name)
		}
	}
	return nil
}

// Render draws the figure into a PNG byte slice.
func (f *Figure) Render() ([]byte, error) {
	if err := f.check(); err != nil {
		return nil, err
	}

	var series []chart.Series
	for i, l := range f.Lines {
		c := palette[i%len(palette)]
		style := chart.Style{StrokeColor: c, StrokeWidth: 2.0}
		if l.Dashed {
			style.StrokeDashArray = []float64{6.0, 4.0}
		}
		if l.Scatter {
			style.StrokeWidth = chart.Disabled
			style.DotColor = c
			style.DotWidth = 3.0
		}

		ys := l.Y
		if f.InvertY {
			ys = negate(ys)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Name,
			XValues: l.X,
			YValues: ys,
			Style:   style,
		})
	}

	yFormat := chart.FloatValueFormatter
	if f.InvertY {
		// Values were negated, so the labels undo the sign.
		yFormat = func(v interface{}) string {
			return fmt.Sprintf("%.2f", -v.(float64))
		}
	}

	graph := chart.Chart{
		Title:  f.Title,
		Width:  f.Width,
		Height: f.Height,
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:           f.YLabel,
			Style:          chart.Style{FontSize: 10.0},
			ValueFormatter: yFormat,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("plot: rendering %q: %v", f.Title, err)
	}
	return buf.Bytes(), nil
}

// Save renders the figure and writes it to file.
func (f *Figure) Save(file string) error {
	b, err := f.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}

// SaveBackend writes the figure with the selected backend: "chart" (or "")
// renders the PNG in-process, "pyplot" hands the figure to matplotlib.
func (f *Figure) SaveBackend(backend, file string) error {
	switch backend {
	case "", "chart":
		return f.Save(file)
	case "pyplot":
		return f.savePyplot(file)
	}
	return fmt.Errorf("plot: unknown backend %q", backend)
}

// pyplotColors cycles like palette, restricted to matplotlib's single
// character color codes.
var pyplotColors = []string{"b", "r", "g", "m", "k", "c"}

// pyplotFormat builds the matplotlib format string of line i.
func pyplotFormat(i int, l Line) string {
	c := pyplotColors[i%len(pyplotColors)]
	if l.Scatter {
		return "o" + c
	}
	if l.Dashed {
		return c + "--"
	}
	return c
}

func (f *Figure) savePyplot(file string) error {
	if err := f.check(); err != nil {
		return err
	}

	plt.Reset()
	plt.Figure()
	for i, l := range f.Lines {
		plt.Plot(l.X, l.Y, pyplotFormat(i, l), plt.LW(2))
	}
	if f.InvertY {
		lo, hi := f.yRange()
		plt.YLim(hi, lo)
	}
	plt.Title(f.Title)
	plt.XLabel(f.XLabel, plt.FontSize(16))
	plt.YLabel(f.YLabel, plt.FontSize(16))
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(file)
	plt.Execute()
	return nil
}

func (f *Figure) yRange() (lo, hi float64) {
	lo, hi = f.Lines[0].Y[0], f.Lines[0].Y[0]
	for _, l := range f.Lines {
		for _, y := range l.Y {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
	}
	return lo, hi
}

func negate(ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = -y
	}
	return out
}
