package mdp

import "math"

// ValueIterationSolver computes the optimal value function and policy by
// repeated Bellman optimality backups over the whole grid.
type ValueIterationSolver struct {
	b *backup
}

var _ Solver = &ValueIterationSolver{}

func NewValueIterationSolver(cfg Config) (*ValueIterationSolver, error) {
	b, err := newBackup(cfg)
	if err != nil {
		return nil, err
	}
	return &ValueIterationSolver{b: b}, nil
}

// Solve sweeps the grid synchronously: every backup within a sweep reads
// the previous sweep's values and writes into a fresh table. It stops once
// the largest per-state change over non-terminal states drops below the
// threshold, and returns ErrNoConvergence if the sweep cap runs out first.
func (v *ValueIterationSolver) Solve() (*Result, error) {
	b := v.b
	values := b.zeroValues()
	policy := make(Policy, len(b.states))

	for sweep := 1; sweep <= b.cfg.MaxSweeps; sweep++ {
		delta := 0.0
		newValues := cloneValues(values)
		for _, s := range b.states {
			if b.terminals.Contains(s) {
				continue
			}
			best, bestQ := b.greedy(s, values)
			newValues[s] = bestQ
			policy[s] = best
			if diff := math.Abs(values[s] - bestQ); diff > delta {
				delta = diff
			}
		}
		values = newValues
		if delta < b.cfg.Threshold {
			return &Result{Values: values, Policy: policy, Sweeps: sweep}, nil
		}
	}
	return nil, ErrNoConvergence
}
