package analysis

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gridworld-dp/mdp"
)

const goalSymbol = "G"

// FprintPolicy writes one direction letter per cell, with G marking the
// absorbing goal. Cells without a policy entry stay blank.
func FprintPolicy(w io.Writer, cfg mdp.Config, policy mdp.Policy) {
	for i := 0; i < cfg.GridSize; i++ {
		for j := 0; j < cfg.GridSize; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			s := mdp.State{Row: i, Col: j}
			if a, ok := policy[s]; ok {
				fmt.Fprint(w, a.Symbol)
			} else if s == cfg.Goal {
				fmt.Fprint(w, goalSymbol)
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

var arrowGlyphs = map[string]string{
	mdp.ActionUp.Name:    "↑",
	mdp.ActionDown.Name:  "↓",
	mdp.ActionLeft.Name:  "←",
	mdp.ActionRight.Name: "→",
}

// SavePolicyPlot renders the policy as a grid of direction arrows, with a
// filled circle marking the absorbing goal.
func SavePolicyPlot(path string, cfg mdp.Config, policy mdp.Policy) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Policy (r = %v)", cfg.StartReward)
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.X.Min, p.X.Max = -0.5, float64(cfg.GridSize)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(cfg.GridSize)-0.5

	xys := make(plotter.XYs, 0, len(policy))
	texts := make([]string, 0, len(policy))
	for _, s := range cfg.States() {
		a, ok := policy[s]
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{
			X: float64(s.Col),
			Y: float64(cfg.GridSize - 1 - s.Row),
		})
		texts = append(texts, arrowGlyphs[a.Name])
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	p.Add(labels)

	goal, err := plotter.NewScatter(plotter.XYs{{
		X: float64(cfg.Goal.Col),
		Y: float64(cfg.GridSize - 1 - cfg.Goal.Row),
	}})
	if err != nil {
		return err
	}
	goal.GlyphStyle.Shape = draw.CircleGlyph{}
	goal.GlyphStyle.Radius = vg.Points(6)
	goal.GlyphStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	p.Add(goal)
	p.Legend.Add("goal", goal)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
