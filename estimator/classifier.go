// estimator/classifier.go
package estimator

import (
	"fmt"
	"math/rand"

	"github.com/quantyard/lgd/dataset"
	"github.com/quantyard/lgd/preprocess"
)

// Classifier predicts P(repossession) for a loan record. It owns its
// feature Encoder (fit on the same training slice as the forest) and a
// bagged forest over 0/1 outcome targets.
type Classifier struct {
	Encoder *preprocess.Encoder
	Forest  *Forest
}

// NewClassifier builds an unfitted classifier over the standard feature
// columns.
func NewClassifier(params Params) *Classifier {
	return &Classifier{
		Encoder: preprocess.NewEncoder(dataset.NumericColumns, dataset.CategoricalColumns),
		Forest:  &Forest{Params: params},
	}
}

// Fit trains on recs using each record's repossession flag as the target.
// Training data containing a single outcome class is rejected: no
// two-class boundary can be formed from it.
func (c *Classifier) Fit(recs []dataset.LoanRecord, rng *rand.Rand) error {
	if len(recs) == 0 {
		return fmt.Errorf("classifier: cannot fit on empty record set")
	}

	y := make([]float64, len(recs))
	pos := 0
	for i, r := range recs {
		if r.Repossessed {
			y[i] = 1
			pos++
		}
	}
	if pos == 0 || pos == len(recs) {
		return fmt.Errorf("classifier: training outcomes contain a single class (%d of %d repossessed)", pos, len(recs))
	}

	X, err := c.Encoder.FitTransform(recs)
	if err != nil {
		return fmt.Errorf("classifier: %w", err)
	}
	if err := c.Forest.Fit(X, y, rng); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}
	return nil
}

// PredictProba returns the estimated repossession probability, in [0,1],
// for each record.
func (c *Classifier) PredictProba(recs []dataset.LoanRecord) ([]float64, error) {
	X, err := c.Encoder.Transform(recs)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	probs, err := c.Forest.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	for i, p := range probs {
		// tree averages of 0/1 leaves stay inside [0,1]; clamp guards
		// against float drift at the edges
		if p < 0 {
			probs[i] = 0
		} else if p > 1 {
			probs[i] = 1
		}
	}
	return probs, nil
}

// Score returns classification accuracy on recs, thresholding the
// probability at 0.5.
func (c *Classifier) Score(recs []dataset.LoanRecord) (float64, error) {
	probs, err := c.PredictProba(recs)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, r := range recs {
		if (probs[i] >= 0.5) == r.Repossessed {
			correct++
		}
	}
	return float64(correct) / float64(len(recs)), nil
}
