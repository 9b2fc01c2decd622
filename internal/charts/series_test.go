package charts

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func TestCountTypes(t *testing.T) {
	roster := starters(t)
	extra, err := types.NewSpecies("Charmander")
	require.NoError(t, err)
	roster = append(roster, extra)

	got := CountTypes(roster)
	assert.Equal(t, []types.TypeCount{
		{Type: "Electric", Count: 1},
		{Type: "Fire", Count: 2},
		{Type: "Grass", Count: 1},
	}, got)
}

func TestStatDistributionKeepsRosterOrder(t *testing.T) {
	s := StatDistribution(starters(t), types.FieldSpeed)
	assert.Equal(t, NameSpeedStats, s.Name)
	assert.Equal(t, []string{"Bulbasaur", "Charmander", "Pikachu"}, s.Labels)
	assert.Equal(t, []int{45, 65, 90}, s.Values)
}

func TestAllSeriesMatchesNames(t *testing.T) {
	series := AllSeries(nil)
	require.Len(t, series, len(Names))
	for i, s := range series {
		assert.Equal(t, Names[i], s.Name)
		assert.Empty(t, s.Values)
	}
}

// countBarPixels counts pixels painted in the bar color.
func countBarPixels(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == colorBar {
				n++
			}
		}
	}
	return n
}

func TestRenderDrawsBars(t *testing.T) {
	s := Series{Title: "t", Labels: []string{"a", "b"}, Values: []int{10, 4}}
	img, err := Render(s, 200, 150)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
	assert.Positive(t, countBarPixels(img))
}

func TestRenderEmptySeries(t *testing.T) {
	img, err := Render(Series{Title: "empty"}, 200, 150)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Zero(t, countBarPixels(img))
}

func TestPlotLabels(t *testing.T) {
	s := Series{Labels: []string{"", "Fletchinder the Great"}, Values: []int{1, 2}}
	p, err := Plot(s, 640)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Greater(t, p.Y.Max, 2.0)

	var labels []string
	for _, tk := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"(none)", "Fletchinder."}, labels)
}

func TestIntegerTicks(t *testing.T) {
	for _, tk := range (integerTicks{}).Ticks(0, 2) {
		assert.Equal(t, math.Trunc(tk.Value), tk.Value)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Pikachu", truncate("Pikachu", 7))
	assert.Equal(t, "Pik.", truncate("Pikachu", 4))
	assert.Equal(t, "P", truncate("Pikachu", 1))
}
