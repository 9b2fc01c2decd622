package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi makes one vg point one pixel.
const dpi = 72

// maxLabelRunes caps x-axis label length.
const maxLabelRunes = 12

var colorBar = color.RGBA{0, 102, 204, 255}

// Plot builds the bar chart for s. An empty series gets a "no data" note
// in place of bars.
func Plot(s Series, width int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.Y.Min = 0
	p.Y.Tick.Marker = integerTicks{}

	if len(s.Values) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
		note, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: 0.5, Y: 0.5}},
			Labels: []string{"no data"},
		})
		if err != nil {
			return nil, err
		}
		note.TextStyle[0].XAlign = draw.XCenter
		p.Add(note)
		return p, nil
	}

	values := make(plotter.Values, len(s.Values))
	tops := make(plotter.XYs, len(s.Values))
	topLabels := make([]string, len(s.Values))
	maxVal := 0
	for i, v := range s.Values {
		v = max(v, 0)
		values[i] = float64(v)
		tops[i] = plotter.XY{X: float64(i), Y: float64(v)}
		topLabels[i] = strconv.Itoa(v)
		maxVal = max(maxVal, v)
	}

	slot := float64(width) * 0.8 / float64(len(values))
	bars, err := plotter.NewBarChart(values, vg.Points(max(slot*0.7, 1)))
	if err != nil {
		return nil, err
	}
	bars.Color = colorBar
	bars.LineStyle.Width = 0
	p.Add(bars)

	counts, err := plotter.NewLabels(plotter.XYLabels{XYs: tops, Labels: topLabels})
	if err != nil {
		return nil, err
	}
	for i := range counts.TextStyle {
		counts.TextStyle[i].XAlign = draw.XCenter
	}
	counts.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(counts)

	labels := make([]string, len(s.Labels))
	for i, l := range s.Labels {
		labels[i] = truncate(displayLabel(l), maxLabelRunes)
	}
	p.NominalX(labels...)
	if len(labels) > 4 {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
	p.Y.Max = math.Max(1, float64(maxVal)*1.15)
	return p, nil
}

// Render draws s at width x height pixels.
func Render(s Series, width, height int) (image.Image, error) {
	c, err := render(s, width, height)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// EncodePNG renders s and returns the PNG bytes.
func EncodePNG(s Series, width, height int) ([]byte, error) {
	c, err := render(s, width, height)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func render(s Series, width, height int) (*vgimg.Canvas, error) {
	p, err := Plot(s, width)
	if err != nil {
		return nil, fmt.Errorf("building %s chart: %w", s.Name, err)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(width)), vg.Points(float64(height))),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	return c, nil
}

// integerTicks keeps the default tick layout but drops fractional ticks,
// since counts and stats are integers.
type integerTicks struct{}

func (integerTicks) Ticks(lo, hi float64) []plot.Tick {
	var out []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Value == math.Trunc(t.Value) {
			out = append(out, t)
		}
	}
	return out
}

func displayLabel(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "."
}
