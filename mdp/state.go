package mdp

import "fmt"

// State is one cell of the square grid, identified by row-major coordinates.
// States are plain values: comparable, usable as map keys.
type State struct {
	Row int
	Col int
}

func (s State) Hash() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Action is one of the four movement directions. Only the package-level
// singletons exist, so comparing pointers compares actions.
type Action struct {
	Name   string
	Symbol string

	dRow int
	dCol int
}

func (a *Action) Hash() string {
	return a.Name
}

// Apply returns the state reached by the primary displacement, ignoring
// grid bounds.
func (a *Action) Apply(s State) State {
	return State{Row: s.Row + a.dRow, Col: s.Col + a.dCol}
}

// Perpendiculars returns the two actions orthogonal to a, in the order the
// transition model enumerates drift outcomes.
func (a *Action) Perpendiculars() [2]*Action {
	if a == ActionUp || a == ActionDown {
		return [2]*Action{ActionLeft, ActionRight}
	}
	return [2]*Action{ActionUp, ActionDown}
}

var (
	ActionUp    = &Action{Name: "Up", Symbol: "U", dRow: -1}
	ActionDown  = &Action{Name: "Down", Symbol: "D", dRow: 1}
	ActionLeft  = &Action{Name: "Left", Symbol: "L", dCol: -1}
	ActionRight = &Action{Name: "Right", Symbol: "R", dCol: 1}

	// Actions is the canonical enumeration order, alphabetical by name.
	// Both solvers iterate it when taking the greedy argmax, so a tie in Q
	// always resolves to the earliest of the tied actions here.
	Actions = []*Action{ActionDown, ActionLeft, ActionRight, ActionUp}
)
