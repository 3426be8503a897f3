package mdp

import "errors"

var (
	// ErrGridTooSmall indicates a grid side length below 2.
	ErrGridTooSmall = errors.New("mdp: grid must be at least 2x2")
	// ErrStateOutOfGrid indicates a start or goal state outside the grid.
	ErrStateOutOfGrid = errors.New("mdp: start and goal states must lie inside the grid")
	// ErrStartIsGoal indicates coinciding start and goal states.
	ErrStartIsGoal = errors.New("mdp: start and goal states must differ")
	// ErrBadDiscount indicates a discount factor outside (0, 1).
	ErrBadDiscount = errors.New("mdp: discount must lie in (0, 1)")
	// ErrBadThreshold indicates a non-positive convergence threshold.
	ErrBadThreshold = errors.New("mdp: convergence threshold must be positive")
	// ErrBadSweepCap indicates a non-positive sweep cap.
	ErrBadSweepCap = errors.New("mdp: sweep cap must be positive")
	// ErrNoConvergence is returned when a solver exhausts its sweep cap
	// before the convergence test passes.
	ErrNoConvergence = errors.New("mdp: did not converge within the sweep cap")
)
