package mdp

// Config fixes one gridworld MDP instance. Solvers copy what they need at
// construction; nothing here is process-global, so independent configs can
// coexist in one process.
type Config struct {
	// GridSize is the side length of the square grid.
	GridSize int
	// Discount is the factor applied to downstream values, in (0, 1).
	Discount float64
	// Threshold is the sweep-to-sweep delta below which a solve counts as
	// converged.
	Threshold float64
	// MaxSweeps caps value-table sweeps (and policy-iteration rounds)
	// before a solve gives up with ErrNoConvergence.
	MaxSweeps int

	// Start collects StartReward, Goal is absorbing and collects
	// GoalReward; every other state collects StepReward.
	Start       State
	Goal        State
	StartReward float64
	StepReward  float64
	GoalReward  float64

	// Seed drives the random initial policy of policy iteration. Solves
	// with equal configs are bit-for-bit identical.
	Seed uint64
}

// DefaultConfig is the canonical gridworld: a 3x3 grid, discount 0.99, the
// start at the top-left corner with reward r and the absorbing goal at the
// top-right corner.
func DefaultConfig(r float64) Config {
	return Config{
		GridSize:    3,
		Discount:    0.99,
		Threshold:   1e-4,
		MaxSweeps:   10000,
		Start:       State{Row: 0, Col: 0},
		Goal:        State{Row: 0, Col: 2},
		StartReward: r,
		StepReward:  -1,
		GoalReward:  10,
		Seed:        1,
	}
}

func (c Config) Validate() error {
	if c.GridSize < 2 {
		return ErrGridTooSmall
	}
	if !c.inGrid(c.Start) || !c.inGrid(c.Goal) {
		return ErrStateOutOfGrid
	}
	if c.Start == c.Goal {
		return ErrStartIsGoal
	}
	if c.Discount <= 0 || c.Discount >= 1 {
		return ErrBadDiscount
	}
	if c.Threshold <= 0 {
		return ErrBadThreshold
	}
	if c.MaxSweeps <= 0 {
		return ErrBadSweepCap
	}
	return nil
}

func (c Config) inGrid(s State) bool {
	return s.Row >= 0 && s.Row < c.GridSize && s.Col >= 0 && s.Col < c.GridSize
}

// States enumerates the grid in row-major order. Sweeps iterate this slice,
// never the value maps, so updates visit states deterministically.
func (c Config) States() []State {
	states := make([]State, 0, c.GridSize*c.GridSize)
	for i := 0; i < c.GridSize; i++ {
		for j := 0; j < c.GridSize; j++ {
			states = append(states, State{Row: i, Col: j})
		}
	}
	return states
}
