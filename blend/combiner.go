// blend/combiner.go
package blend

import (
	"fmt"

	"github.com/quantyard/lgd/dataset"
)

// ProbabilityEstimator yields P(repossession) per record.
type ProbabilityEstimator interface {
	PredictProba(recs []dataset.LoanRecord) ([]float64, error)
}

// LossEstimator yields a conditional loss magnitude per record.
type LossEstimator interface {
	Predict(recs []dataset.LoanRecord) ([]float64, error)
}

// Combiner blends the three fitted sub-models into one LGD figure:
//
//	lgd = p*lossRepo + (1-p)*lossCure
//
// elementwise over records. It holds no state of its own and only
// propagates its dependents' errors.
type Combiner struct {
	Prob ProbabilityEstimator
	Repo LossEstimator
	Cure LossEstimator
}

// Predict returns the blended LGD estimate for each record.
func (c *Combiner) Predict(recs []dataset.LoanRecord) ([]float64, error) {
	if c.Prob == nil || c.Repo == nil || c.Cure == nil {
		return nil, fmt.Errorf("combiner: all three estimators are required")
	}

	p, err := c.Prob.PredictProba(recs)
	if err != nil {
		return nil, fmt.Errorf("combiner: probability: %w", err)
	}
	lr, err := c.Repo.Predict(recs)
	if err != nil {
		return nil, fmt.Errorf("combiner: loss given repossession: %w", err)
	}
	lc, err := c.Cure.Predict(recs)
	if err != nil {
		return nil, fmt.Errorf("combiner: loss given cure: %w", err)
	}
	if len(p) != len(recs) || len(lr) != len(recs) || len(lc) != len(recs) {
		return nil, fmt.Errorf("combiner: estimator output length mismatch (%d/%d/%d for %d records)",
			len(p), len(lr), len(lc), len(recs))
	}

	out := make([]float64, len(recs))
	for i := range recs {
		out[i] = p[i]*lr[i] + (1-p[i])*lc[i]
	}
	return out, nil
}
