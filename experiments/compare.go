package experiments

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"gridworld-dp/mdp"
)

func CompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Check that value iteration and policy iteration agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range rewards {
				cfg := newConfig(r)
				vi, err := mdp.NewValueIterationSolver(cfg)
				if err != nil {
					return err
				}
				pi, err := mdp.NewPolicyIterationSolver(cfg)
				if err != nil {
					return err
				}

				c := NewComparison(resultDataSet, agreementComparator(cfg))
				c.AddExperiment(&Experiment{
					Name:   fmt.Sprintf("value-iteration r=%v", r),
					Config: cfg,
					Solver: vi,
				})
				c.AddExperiment(&Experiment{
					Name:   fmt.Sprintf("policy-iteration r=%v", r),
					Config: cfg,
					Solver: pi,
				})
				if err := c.Run(); err != nil {
					return err
				}
			}
			fmt.Println("solvers agree on all start rewards")
			return nil
		},
	}
}

func resultDataSet(_ mdp.Config, res *mdp.Result) DataSet {
	return res
}

// agreementComparator checks exact policy equality and value agreement
// within the numerical slack both stopping rules allow: each solver halts
// within threshold*discount/(1-discount) of the fixed point.
func agreementComparator(cfg mdp.Config) Comparator {
	return func(names []string, datasets []DataSet) error {
		base := datasets[0].(*mdp.Result)
		tol := 2 * cfg.Threshold * cfg.Discount / (1 - cfg.Discount)
		for i := 1; i < len(datasets); i++ {
			other := datasets[i].(*mdp.Result)
			for _, s := range cfg.States() {
				if !scalar.EqualWithinAbs(base.Values[s], other.Values[s], tol) {
					return fmt.Errorf("%s and %s disagree on the value of %s: %.4f vs %.4f",
						names[0], names[i], s.Hash(), base.Values[s], other.Values[s])
				}
			}
			if len(base.Policy) != len(other.Policy) {
				return fmt.Errorf("%s and %s cover different policy domains", names[0], names[i])
			}
			for s, a := range base.Policy {
				if other.Policy[s] != a {
					return fmt.Errorf("%s and %s disagree on the action at %s: %s vs %s",
						names[0], names[i], s.Hash(), a.Name, other.Policy[s].Name)
				}
			}
		}
		return nil
	}
}
