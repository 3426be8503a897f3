package mdp

// ValueTable maps states to their expected discounted return.
type ValueTable map[State]float64

// Policy maps every non-terminal state to the action chosen there.
// Terminal states never appear as keys.
type Policy map[State]*Action

// Result is one converged solve. The tables are freshly allocated per call
// and never retained by the solver, so callers own them outright.
type Result struct {
	Values ValueTable
	Policy Policy
	// Sweeps counts full value-table sweeps; for policy iteration this
	// accumulates across evaluation rounds.
	Sweeps int
}

// Solver is implemented by both dynamic-programming solvers.
type Solver interface {
	Solve() (*Result, error)
}
