package mdp

import (
	"maps"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// PolicyIterationSolver alternates exact policy evaluation with greedy
// policy improvement until the policy stops changing.
type PolicyIterationSolver struct {
	b   *backup
	src rand.Source
}

var _ Solver = &PolicyIterationSolver{}

func NewPolicyIterationSolver(cfg Config) (*PolicyIterationSolver, error) {
	b, err := newBackup(cfg)
	if err != nil {
		return nil, err
	}
	return &PolicyIterationSolver{
		b:   b,
		src: rand.NewSource(cfg.Seed),
	}, nil
}

// Solve terminates when an improvement step returns the exact policy it
// was derived from; policy equality is map equality, not value closeness.
func (p *PolicyIterationSolver) Solve() (*Result, error) {
	b := p.b
	policy := p.initialPolicy()
	sweeps := 0

	for round := 1; round <= b.cfg.MaxSweeps; round++ {
		values, n, err := p.evaluate(policy)
		if err != nil {
			return nil, err
		}
		sweeps += n
		improved := p.improve(values)
		if maps.Equal(policy, improved) {
			return &Result{Values: values, Policy: improved, Sweeps: sweeps}, nil
		}
		policy = improved
	}
	return nil, ErrNoConvergence
}

// initialPolicy assigns every non-terminal state an action sampled
// uniformly from the solver's seeded source, so a given seed always yields
// the same starting policy.
func (p *PolicyIterationSolver) initialPolicy() Policy {
	policy := make(Policy, len(p.b.states))
	for _, s := range p.b.states {
		if p.b.terminals.Contains(s) {
			continue
		}
		weights := make([]float64, len(Actions))
		for i := range weights {
			weights[i] = 1
		}
		i, ok := sampleuv.NewWeighted(weights, p.src).Take()
		if !ok {
			i = 0
		}
		policy[s] = Actions[i]
	}
	return policy
}

// evaluate solves for the value of the fixed policy with the same
// synchronous sweep scheme and stopping rule as value iteration, starting
// from all-zero values.
func (p *PolicyIterationSolver) evaluate(policy Policy) (ValueTable, int, error) {
	b := p.b
	values := b.zeroValues()

	for sweep := 1; sweep <= b.cfg.MaxSweeps; sweep++ {
		delta := 0.0
		newValues := cloneValues(values)
		for _, s := range b.states {
			if b.terminals.Contains(s) {
				continue
			}
			value := b.q(s, policy[s], values)
			newValues[s] = value
			if diff := math.Abs(values[s] - value); diff > delta {
				delta = diff
			}
		}
		values = newValues
		if delta < b.cfg.Threshold {
			return values, sweep, nil
		}
	}
	return nil, 0, ErrNoConvergence
}

// improve derives the greedy policy for values, with the same tie-break
// rule value iteration uses.
func (p *PolicyIterationSolver) improve(values ValueTable) Policy {
	policy := make(Policy, len(p.b.states))
	for _, s := range p.b.states {
		if p.b.terminals.Contains(s) {
			continue
		}
		best, _ := p.b.greedy(s, values)
		policy[s] = best
	}
	return policy
}
