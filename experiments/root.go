package experiments

import (
	"github.com/spf13/cobra"

	"gridworld-dp/mdp"
)

var (
	gridSize  int
	discount  float64
	threshold float64
	maxSweeps int
	rewards   []float64
	seed      uint64
	saveDir   string
	plots     bool
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gridworld-dp",
		Short:         "Dynamic-programming solvers for a stochastic gridworld",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().IntVar(&gridSize, "grid-size", 3, "Side length of the square grid")
	rootCommand.PersistentFlags().Float64Var(&discount, "discount", 0.99, "Discount factor")
	rootCommand.PersistentFlags().Float64Var(&threshold, "threshold", 1e-4, "Convergence threshold")
	rootCommand.PersistentFlags().IntVar(&maxSweeps, "max-sweeps", 10000, "Sweep cap before reporting non-convergence")
	rootCommand.PersistentFlags().Float64SliceVar(&rewards, "rewards", []float64{100, 3, 0, -3}, "Start-state rewards to sweep")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for the random initial policy of policy iteration")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Directory for plots and data sets")
	rootCommand.PersistentFlags().BoolVar(&plots, "plots", false, "Render value and policy plots and JSON data sets")
	// adding the subcommands here
	rootCommand.AddCommand(ValueIterationCommand())
	rootCommand.AddCommand(PolicyIterationCommand())
	rootCommand.AddCommand(CompareCommand())
	return rootCommand
}

// newConfig applies the persistent flags on top of the defaults, keeping
// the goal in the top-right corner as the grid grows.
func newConfig(r float64) mdp.Config {
	cfg := mdp.DefaultConfig(r)
	cfg.GridSize = gridSize
	cfg.Goal = mdp.State{Row: 0, Col: gridSize - 1}
	cfg.Discount = discount
	cfg.Threshold = threshold
	cfg.MaxSweeps = maxSweeps
	cfg.Seed = seed
	return cfg
}
