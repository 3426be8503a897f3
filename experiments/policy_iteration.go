package experiments

import (
	"github.com/spf13/cobra"

	"gridworld-dp/mdp"
)

func PolicyIterationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policy-iteration",
		Short: "Solve the gridworld by policy iteration for each start reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep("policy-iteration", func(cfg mdp.Config) (mdp.Solver, error) {
				return mdp.NewPolicyIterationSolver(cfg)
			})
		},
	}
}
