package experiments

import (
	"fmt"

	"gridworld-dp/mdp"
)

// Experiment names one solver constructed for a configuration.
type Experiment struct {
	Name   string
	Config mdp.Config
	Solver mdp.Solver
}

// Analyzer reduces a solve result to a data set; Comparator consumes the
// data sets of all experiments side by side.
type Analyzer func(mdp.Config, *mdp.Result) DataSet

type Comparator func(names []string, datasets []DataSet) error

type DataSet interface{}

// Comparison runs a set of experiments and feeds their analyzed results to
// a comparator.
type Comparison struct {
	experiments []*Experiment
	analyzer    Analyzer
	comparator  Comparator
}

func NewComparison(analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		experiments: make([]*Experiment, 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

func (c *Comparison) Run() error {
	names := make([]string, len(c.experiments))
	datasets := make([]DataSet, len(c.experiments))
	for i, e := range c.experiments {
		fmt.Printf("Running experiment: %s\n", e.Name)
		res, err := e.Solver.Solve()
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		names[i] = e.Name
		datasets[i] = c.analyzer(e.Config, res)
	}
	return c.comparator(names, datasets)
}
