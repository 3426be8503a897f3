package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"gridworld-dp/analysis"
	"gridworld-dp/mdp"
)

// runSweep solves one configuration per start reward and hands each result
// to the console printers, plus plots and JSON exports when asked for.
func runSweep(name string, build func(mdp.Config) (mdp.Solver, error)) error {
	for _, r := range rewards {
		cfg := newConfig(r)
		solver, err := build(cfg)
		if err != nil {
			return err
		}
		res, err := solver.Solve()
		if err != nil {
			return fmt.Errorf("%s: r=%v: %w", name, r, err)
		}

		fmt.Printf("\n--- %s results for r = %v ---\n", name, r)
		fmt.Printf("Converged after %d sweeps\n", res.Sweeps)
		fmt.Println("Value function:")
		analysis.FprintValues(os.Stdout, cfg, res.Values)
		fmt.Println("\nPolicy:")
		analysis.FprintPolicy(os.Stdout, cfg, res.Policy)

		if err := saveArtifacts(name, r, cfg, res); err != nil {
			return err
		}
	}
	return nil
}

func saveArtifacts(name string, r float64, cfg mdp.Config, res *mdp.Result) error {
	if !plots {
		return nil
	}
	if _, err := os.Stat(saveDir); err != nil {
		os.Mkdir(saveDir, os.ModePerm)
	}
	base := filepath.Join(saveDir, fmt.Sprintf("%s_r%v", name, r))
	if err := analysis.WriteDataSet(base+".json", analysis.NewSolveDataSet(cfg, res)); err != nil {
		return err
	}
	if err := analysis.SaveValueHeatmap(base+"_values.png", cfg, res.Values); err != nil {
		return err
	}
	return analysis.SavePolicyPlot(base+"_policy.png", cfg, res.Policy)
}
