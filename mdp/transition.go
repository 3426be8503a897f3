package mdp

// Outcome is one possible result of taking an action: the next state and
// the probability of drifting there.
type Outcome struct {
	Next State
	Prob float64
}

const (
	primaryProb       = 0.8
	perpendicularProb = 0.1
)

// TransitionModel produces the stochastic drift distribution of the grid:
// the intended direction happens with probability 0.8 and each of the two
// perpendicular directions with probability 0.1. A displacement that would
// leave the grid resolves to the originating state instead.
type TransitionModel struct {
	cfg Config
}

func NewTransitionModel(cfg Config) (*TransitionModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TransitionModel{cfg: cfg}, nil
}

// Outcomes returns exactly three entries, primary direction first, summing
// to probability 1. Two entries may name the same next state (both drifts
// reflected off a boundary); they are kept as separate entries rather than
// merged, matching how the Bellman sums accumulate contributions outcome
// by outcome.
func (m *TransitionModel) Outcomes(s State, a *Action) []Outcome {
	outcomes := make([]Outcome, 0, 3)
	outcomes = append(outcomes, Outcome{Next: m.resolve(s, a), Prob: primaryProb})
	for _, perp := range a.Perpendiculars() {
		outcomes = append(outcomes, Outcome{Next: m.resolve(s, perp), Prob: perpendicularProb})
	}
	return outcomes
}

func (m *TransitionModel) resolve(s State, a *Action) State {
	next := a.Apply(s)
	if !m.cfg.inGrid(next) {
		return s
	}
	return next
}
