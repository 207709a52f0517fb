// estimator/forest.go
package estimator

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Params are the ensemble hyperparameters shared by both estimator kinds.
type Params struct {
	Trees    int `json:"trees" yaml:"trees"`
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
	MinLeaf  int `json:"min_leaf" yaml:"min_leaf"`
	// FeaturesPerSplit is the number of features considered per split
	// (0 means all).
	FeaturesPerSplit int `json:"features_per_split" yaml:"features_per_split"`
}

// DefaultParams returns the ensemble defaults.
func DefaultParams() Params {
	return Params{Trees: 100, MaxDepth: 8, MinLeaf: 2, FeaturesPerSplit: 0}
}

// Validate checks the hyperparameters.
func (p Params) Validate() error {
	if p.Trees <= 0 {
		return fmt.Errorf("trees must be positive, got %d", p.Trees)
	}
	if p.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", p.MaxDepth)
	}
	if p.MinLeaf <= 0 {
		return fmt.Errorf("min_leaf must be positive, got %d", p.MinLeaf)
	}
	if p.FeaturesPerSplit < 0 {
		return fmt.Errorf("features_per_split must be >= 0, got %d", p.FeaturesPerSplit)
	}
	return nil
}

// Forest is a bagged ensemble of regression trees. Each tree is grown on
// a bootstrap sample; predictions are the plain average over trees, so a
// forest fit on 0/1 targets yields a probability in [0,1].
type Forest struct {
	Params Params
	Trees  []*Tree
}

// Fit grows the ensemble on X against y. All randomness (bootstrap rows,
// per-split feature subsets) comes from rng.
func (f *Forest) Fit(X *mat.Dense, y []float64, rng *rand.Rand) error {
	if err := f.Params.Validate(); err != nil {
		return fmt.Errorf("forest params: %w", err)
	}
	rows, _ := X.Dims()
	if rows == 0 {
		return fmt.Errorf("forest: cannot fit on empty matrix")
	}
	if len(y) != rows {
		return fmt.Errorf("forest: %d rows but %d targets", rows, len(y))
	}

	f.Trees = make([]*Tree, f.Params.Trees)
	for t := range f.Trees {
		idx := make([]int, rows)
		for i := range idx {
			idx[i] = rng.Intn(rows)
		}
		f.Trees[t] = growTree(X, y, idx, f.Params.MaxDepth, f.Params.MinLeaf, f.Params.FeaturesPerSplit, rng)
	}
	return nil
}

// Predict returns the tree-average prediction for every row of X.
func (f *Forest) Predict(X *mat.Dense) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("forest: Predict called before Fit")
	}

	rows, _ := X.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := X.RawRowView(i)
		sum := 0.0
		for _, t := range f.Trees {
			sum += t.predictRow(row)
		}
		out[i] = sum / float64(len(f.Trees))
	}
	return out, nil
}
