package analysis

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gridworld-dp/mdp"
)

// ValueGrid adapts a solved value table to gonum's GridXYZ so it can be
// fed straight into a heat map.
type ValueGrid struct {
	Size   int
	Values mdp.ValueTable
}

var _ plotter.GridXYZ = &ValueGrid{}

func NewValueGrid(cfg mdp.Config, values mdp.ValueTable) *ValueGrid {
	return &ValueGrid{Size: cfg.GridSize, Values: values}
}

func (g *ValueGrid) Dims() (int, int) {
	return g.Size, g.Size
}

// Z flips rows so that row 0 renders at the top, matching the console grids.
func (g *ValueGrid) Z(c, r int) float64 {
	return g.Values[mdp.State{Row: g.Size - 1 - r, Col: c}]
}

func (g *ValueGrid) X(c int) float64 {
	return float64(c)
}

func (g *ValueGrid) Y(r int) float64 {
	return float64(r)
}

func (g *ValueGrid) Min() float64 {
	min := 0.0
	first := true
	for _, v := range g.Values {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min
}

func (g *ValueGrid) Max() float64 {
	max := 0.0
	first := true
	for _, v := range g.Values {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}

// FprintValues writes the value table as a grid of fixed-width numbers,
// row 0 first.
func FprintValues(w io.Writer, cfg mdp.Config, values mdp.ValueTable) {
	for i := 0; i < cfg.GridSize; i++ {
		for j := 0; j < cfg.GridSize; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%6.2f", values[mdp.State{Row: i, Col: j}])
		}
		fmt.Fprintln(w)
	}
}

// SaveValueHeatmap renders the value table as a heat map with per-cell
// numeric annotations.
func SaveValueHeatmap(path string, cfg mdp.Config, values mdp.ValueTable) error {
	grid := NewValueGrid(cfg, values)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Value function (r = %v)", cfg.StartReward)
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"

	heatMap := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	heatMap.Min = grid.Min()
	heatMap.Max = grid.Max()
	p.Add(heatMap)

	labels, err := valueLabels(cfg, values)
	if err != nil {
		return err
	}
	p.Add(labels)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

func valueLabels(cfg mdp.Config, values mdp.ValueTable) (*plotter.Labels, error) {
	xys := make(plotter.XYs, 0, cfg.GridSize*cfg.GridSize)
	texts := make([]string, 0, cfg.GridSize*cfg.GridSize)
	for _, s := range cfg.States() {
		xys = append(xys, plotter.XY{
			X: float64(s.Col),
			Y: float64(cfg.GridSize - 1 - s.Row),
		})
		texts = append(texts, fmt.Sprintf("%.2f", values[s]))
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}
