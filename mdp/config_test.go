package mdp_test

import (
	"errors"
	"testing"

	"gridworld-dp/mdp"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*mdp.Config)
		err    error
	}{
		{"Default", func(*mdp.Config) {}, nil},
		{"TinyGrid", func(c *mdp.Config) { c.GridSize = 1 }, mdp.ErrGridTooSmall},
		{"GoalOutside", func(c *mdp.Config) { c.Goal = mdp.State{Row: 5, Col: 5} }, mdp.ErrStateOutOfGrid},
		{"StartOutside", func(c *mdp.Config) { c.Start = mdp.State{Row: -1, Col: 0} }, mdp.ErrStateOutOfGrid},
		{"StartIsGoal", func(c *mdp.Config) { c.Start = c.Goal }, mdp.ErrStartIsGoal},
		{"ZeroDiscount", func(c *mdp.Config) { c.Discount = 0 }, mdp.ErrBadDiscount},
		{"DiscountOne", func(c *mdp.Config) { c.Discount = 1 }, mdp.ErrBadDiscount},
		{"ZeroThreshold", func(c *mdp.Config) { c.Threshold = 0 }, mdp.ErrBadThreshold},
		{"NegativeThreshold", func(c *mdp.Config) { c.Threshold = -1e-4 }, mdp.ErrBadThreshold},
		{"ZeroSweepCap", func(c *mdp.Config) { c.MaxSweeps = 0 }, mdp.ErrBadSweepCap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mdp.DefaultConfig(0)
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestStatesRowMajor(t *testing.T) {
	cfg := mdp.DefaultConfig(0)
	states := cfg.States()
	if len(states) != 9 {
		t.Fatalf("States() returned %d states; want 9", len(states))
	}
	want := []mdp.State{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	for i, s := range states {
		if s != want[i] {
			t.Errorf("States()[%d] = %s; want %s", i, s.Hash(), want[i].Hash())
		}
	}
}

func TestRewardTable(t *testing.T) {
	cfg := mdp.DefaultConfig(100)
	rewards := mdp.NewRewardTable(cfg)
	if got := rewards[cfg.Start]; got != 100 {
		t.Errorf("start reward = %v; want 100", got)
	}
	if got := rewards[cfg.Goal]; got != 10 {
		t.Errorf("goal reward = %v; want 10", got)
	}
	if got := rewards[mdp.State{Row: 1, Col: 1}]; got != -1 {
		t.Errorf("step reward = %v; want -1", got)
	}
}

func TestTerminalSet(t *testing.T) {
	cfg := mdp.DefaultConfig(0)
	terminals := mdp.NewTerminalSet(cfg)
	if !terminals.Contains(cfg.Goal) {
		t.Errorf("terminal set should contain the goal %s", cfg.Goal.Hash())
	}
	if terminals.Contains(cfg.Start) {
		t.Errorf("terminal set should not contain the start %s", cfg.Start.Hash())
	}
}
