// estimator/regressor.go
package estimator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/quantyard/lgd/dataset"
	"github.com/quantyard/lgd/preprocess"
)

// Target selects the regression label from a training record.
type Target func(dataset.LoanRecord) float64

// LossGivenRepossession labels with the repossession-branch loss.
func LossGivenRepossession(r dataset.LoanRecord) float64 { return r.LossRepo }

// LossGivenCure labels with the cure-branch loss.
func LossGivenCure(r dataset.LoanRecord) float64 { return r.LossCure }

// Regressor predicts a conditional loss magnitude for a loan record. One
// instance is fit per outcome branch, each on its outcome-matching
// training subset with its own Encoder.
type Regressor struct {
	Encoder *preprocess.Encoder
	Forest  *Forest
}

// NewRegressor builds an unfitted regressor over the standard feature
// columns.
func NewRegressor(params Params) *Regressor {
	return &Regressor{
		Encoder: preprocess.NewEncoder(dataset.NumericColumns, dataset.CategoricalColumns),
		Forest:  &Forest{Params: params},
	}
}

// Fit trains on recs with labels drawn by target. An empty subset is an
// error: the caller is expected to have checked outcome-class presence
// and to abort the pipeline with its own diagnostic.
func (g *Regressor) Fit(recs []dataset.LoanRecord, target Target, rng *rand.Rand) error {
	if len(recs) == 0 {
		return fmt.Errorf("regressor: cannot fit on empty record set")
	}

	y := make([]float64, len(recs))
	for i, r := range recs {
		y[i] = target(r)
		if math.IsNaN(y[i]) {
			return fmt.Errorf("regressor: record %d has no defined loss for this outcome branch", i)
		}
	}

	X, err := g.Encoder.FitTransform(recs)
	if err != nil {
		return fmt.Errorf("regressor: %w", err)
	}
	if err := g.Forest.Fit(X, y, rng); err != nil {
		return fmt.Errorf("regressor: %w", err)
	}
	return nil
}

// Predict returns a loss estimate per record. Values are averages of
// training labels at the leaves, so the range is implied by the training
// data rather than constrained by construction.
func (g *Regressor) Predict(recs []dataset.LoanRecord) ([]float64, error) {
	X, err := g.Encoder.Transform(recs)
	if err != nil {
		return nil, fmt.Errorf("regressor: %w", err)
	}
	out, err := g.Forest.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("regressor: %w", err)
	}
	return out, nil
}
