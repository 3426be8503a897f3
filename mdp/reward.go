package mdp

// RewardTable maps each state to the scalar collected when backing up from
// it. Rewards attach to the source state of a transition, not the
// destination; see backup.q.
type RewardTable map[State]float64

func NewRewardTable(cfg Config) RewardTable {
	rewards := make(RewardTable, cfg.GridSize*cfg.GridSize)
	for _, s := range cfg.States() {
		rewards[s] = cfg.StepReward
	}
	rewards[cfg.Start] = cfg.StartReward
	rewards[cfg.Goal] = cfg.GoalReward
	return rewards
}

// TerminalSet holds the absorbing states. Their values stay frozen at the
// initial zero, they are skipped by every sweep and by the delta test, and
// they never receive a policy entry.
type TerminalSet map[State]bool

func NewTerminalSet(cfg Config) TerminalSet {
	return TerminalSet{cfg.Goal: true}
}

func (t TerminalSet) Contains(s State) bool {
	return t[s]
}
