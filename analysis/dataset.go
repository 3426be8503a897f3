package analysis

import (
	"encoding/json"
	"os"

	"gridworld-dp/mdp"
)

// SolveDataSet is the JSON export of one converged solve, with tables laid
// out as row-major grids.
type SolveDataSet struct {
	StartReward float64     `json:"start_reward"`
	Sweeps      int         `json:"sweeps"`
	Values      [][]float64 `json:"values"`
	Policy      [][]string  `json:"policy"`
}

func NewSolveDataSet(cfg mdp.Config, res *mdp.Result) *SolveDataSet {
	ds := &SolveDataSet{
		StartReward: cfg.StartReward,
		Sweeps:      res.Sweeps,
		Values:      make([][]float64, cfg.GridSize),
		Policy:      make([][]string, cfg.GridSize),
	}
	for i := 0; i < cfg.GridSize; i++ {
		ds.Values[i] = make([]float64, cfg.GridSize)
		ds.Policy[i] = make([]string, cfg.GridSize)
		for j := 0; j < cfg.GridSize; j++ {
			s := mdp.State{Row: i, Col: j}
			ds.Values[i][j] = res.Values[s]
			if a, ok := res.Policy[s]; ok {
				ds.Policy[i][j] = a.Symbol
			} else if s == cfg.Goal {
				ds.Policy[i][j] = goalSymbol
			}
		}
	}
	return ds
}

// WriteDataSet marshals v and writes it next to the plots.
func WriteDataSet(path string, v any) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
