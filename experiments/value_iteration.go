package experiments

import (
	"github.com/spf13/cobra"

	"gridworld-dp/mdp"
)

func ValueIterationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "value-iteration",
		Short: "Solve the gridworld by value iteration for each start reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep("value-iteration", func(cfg mdp.Config) (mdp.Solver, error) {
				return mdp.NewValueIterationSolver(cfg)
			})
		},
	}
}
