/*package render draws solutions using pyplot.

Plots are top-down views of the pyramid: each sphere is drawn at its (x, y)
position, with higher layers drawn smaller and on top of the layers below.
*/
package render

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/pyramid"
	"github.com/phil-mansfield/pyramid/geom"
)

const (
	// LayerCount is the number of horizontal layers in the pyramid.
	LayerCount = 5

	baseMarkerSize  = 40.0
	layerMarkerStep = 6.0
)

var (
	layerHeight = math.Sqrt(2.0 / 3)

	// pieceColors are matplotlib's default color cycle, plus one.
	pieceColors = [pyramid.ClassCount]string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22",
	}
)

// Series is the set of spheres of a single piece within a single layer.
type Series struct {
	Piece, Layer int
	Xs, Ys       []float64
}

// Layer returns the layer which lattice point i belongs to, counting up
// from the base.
func Layer(i int) int {
	return int(math.Floor(geom.Coords[i][2]/layerHeight + 0.5))
}

// SolutionSeries splits a solution into per-piece, per-layer series. Series
// are ordered by layer and then by piece, which is the order they should be
// drawn in. Pieces numbers start at 1.
func SolutionSeries(sol *pyramid.Solution) []Series {
	series := []Series{}
	for layer := 0; layer < LayerCount; layer++ {
		for c, m := range sol.Masks {
			s := Series{Piece: c + 1, Layer: layer}
			for _, p := range m.Points() {
				if p >= pyramid.PointCount || Layer(p) != layer {
					continue
				}
				s.Xs = append(s.Xs, geom.Coords[p][0])
				s.Ys = append(s.Ys, geom.Coords[p][1])
			}
			if len(s.Xs) > 0 {
				series = append(series, s)
			}
		}
	}
	return series
}

// PlotSolution writes a top-down plot of the solution to fname. python and
// matplotlib must be installed.
func PlotSolution(fname string, sol *pyramid.Solution) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))

	labeled := [pyramid.ClassCount + 1]bool{}
	for _, s := range SolutionSeries(sol) {
		opts := []interface{}{
			s.Xs, s.Ys, "o",
			plt.Color(pieceColors[s.Piece-1]),
			plt.MS(baseMarkerSize - layerMarkerStep*float64(s.Layer)),
			plt.MEC("k"),
			plt.ZOrder(float64(s.Layer)),
		}
		if !labeled[s.Piece] {
			opts = append(opts, plt.Label(fmt.Sprintf("Piece %d", s.Piece)))
			labeled[s.Piece] = true
		}
		plt.Plot(opts...)
	}

	plt.XLim(-0.75, 4.75)
	plt.YLim(-0.75, 4.25)
	plt.Legend(plt.Loc("upper right"), plt.NumPoints(1))
	plt.Title("Pyramid solution, viewed from above")
	plt.SaveFig(fname)
	plt.Execute()
}
