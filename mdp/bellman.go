package mdp

import "math"

// backup bundles the model and tables one solver invocation sweeps over.
// Each solver constructs its own, so concurrent solves never share state.
type backup struct {
	cfg       Config
	model     *TransitionModel
	rewards   RewardTable
	terminals TerminalSet
	states    []State
}

func newBackup(cfg Config) (*backup, error) {
	model, err := NewTransitionModel(cfg)
	if err != nil {
		return nil, err
	}
	return &backup{
		cfg:       cfg,
		model:     model,
		rewards:   NewRewardTable(cfg),
		terminals: NewTerminalSet(cfg),
		states:    cfg.States(),
	}, nil
}

// q is the one-step lookahead: for each outcome, the SOURCE state's reward
// plus the discounted value of the next state, accumulated outcome by
// outcome. Using the source reward (never the destination's) is part of
// the contract both solvers share.
func (b *backup) q(s State, a *Action, values ValueTable) float64 {
	total := 0.0
	for _, o := range b.model.Outcomes(s, a) {
		total += o.Prob * (b.rewards[s] + b.cfg.Discount*values[o.Next])
	}
	return total
}

// greedy picks the Q-maximizing action for s under values. The comparison
// is strictly-greater over the canonical action order, so the first of any
// tied actions wins.
func (b *backup) greedy(s State, values ValueTable) (*Action, float64) {
	var best *Action
	bestQ := math.Inf(-1)
	for _, a := range Actions {
		if q := b.q(s, a, values); q > bestQ {
			bestQ = q
			best = a
		}
	}
	return best, bestQ
}

func (b *backup) zeroValues() ValueTable {
	values := make(ValueTable, len(b.states))
	for _, s := range b.states {
		values[s] = 0
	}
	return values
}

func cloneValues(values ValueTable) ValueTable {
	cloned := make(ValueTable, len(values))
	for s, v := range values {
		cloned[s] = v
	}
	return cloned
}
