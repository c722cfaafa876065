// Package render writes PNG visualizations of solved scenarios: a
// horizontal temperature slice as a heatmap and the traced streamlines
// projected onto the floor plan.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vibelux/roomcfd/pkg/analytics"
	"github.com/vibelux/roomcfd/pkg/solver"
)

// sliceGrid adapts one horizontal plane of the temperature field to
// plotter.GridXYZ. Values are °C.
type sliceGrid struct {
	res *analytics.Results
	k   int
	dx  float64
	dy  float64
}

func (g sliceGrid) Dims() (int, int) { return g.res.Grid.Nx, g.res.Grid.Ny }

func (g sliceGrid) Z(c, r int) float64 {
	nx, ny := g.res.Grid.Nx, g.res.Grid.Ny
	return g.res.T[c+r*nx+g.k*nx*ny] - solver.KelvinOffset
}

func (g sliceGrid) X(c int) float64 { return float64(c) * g.dx }
func (g sliceGrid) Y(r int) float64 { return float64(r) * g.dy }

// TemperatureSlice renders the temperature field at height index k as
// a heatmap PNG.
func TemperatureSlice(res *analytics.Results, k int, path string) error {
	if k < 0 || k >= res.Grid.Nz {
		return fmt.Errorf("slice index %d out of range [0, %d)", k, res.Grid.Nz)
	}

	grid := sliceGrid{
		res: res,
		k:   k,
		dx:  res.Room.Width / float64(res.Grid.Nx-1),
		dy:  res.Room.Length / float64(res.Grid.Ny-1),
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Temperature at z = %.2f m", float64(k)*res.Room.Height/float64(res.Grid.Nz-1))
	p.X.Label.Text = "width (m)"
	p.Y.Label.Text = "length (m)"

	pal := moreland.Kindlmann().Palette(255)
	p.Add(plotter.NewHeatMap(grid, pal))

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// Streamlines renders the traced paths projected onto the XY plane.
func Streamlines(res *analytics.Results, path string) error {
	p := plot.New()
	p.Title.Text = "Streamlines (plan view)"
	p.X.Label.Text = "width (m)"
	p.Y.Label.Text = "length (m)"
	p.X.Min, p.X.Max = 0, res.Room.Width
	p.Y.Min, p.Y.Max = 0, res.Room.Length

	for _, line := range res.Streamlines {
		xys := make(plotter.XYs, len(line.Points))
		for i, pt := range line.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building streamline plot: %w", err)
		}
		p.Add(l)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
