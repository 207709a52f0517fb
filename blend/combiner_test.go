package blend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantyard/lgd/dataset"
)

// stubProb returns fixed probabilities regardless of input.
type stubProb []float64

func (s stubProb) PredictProba(recs []dataset.LoanRecord) ([]float64, error) {
	return []float64(s), nil
}

// stubLoss returns fixed loss estimates regardless of input.
type stubLoss []float64

func (s stubLoss) Predict(recs []dataset.LoanRecord) ([]float64, error) {
	return []float64(s), nil
}

type failingProb struct{}

func (failingProb) PredictProba([]dataset.LoanRecord) ([]float64, error) {
	return nil, fmt.Errorf("boom")
}

func TestCombinerWeightedSum(t *testing.T) {
	t.Parallel()

	recs := make([]dataset.LoanRecord, 3)
	c := &Combiner{
		Prob: stubProb{0.5, 0.25, 0.75},
		Repo: stubLoss{0.8, 0.4, 0.6},
		Cure: stubLoss{0.2, 0.0, 0.1},
	}

	got, err := c.Predict(recs)
	require.NoError(t, err)

	assert.InDelta(t, 0.5*0.8+0.5*0.2, got[0], 1e-12)
	assert.InDelta(t, 0.25*0.4+0.75*0.0, got[1], 1e-12)
	assert.InDelta(t, 0.75*0.6+0.25*0.1, got[2], 1e-12)
}

func TestCombinerDegenerateProbabilities(t *testing.T) {
	t.Parallel()

	recs := make([]dataset.LoanRecord, 2)
	c := &Combiner{
		Prob: stubProb{0, 1},
		Repo: stubLoss{0.9, 0.9},
		Cure: stubLoss{0.1, 0.1},
	}

	got, err := c.Predict(recs)
	require.NoError(t, err)

	// p=0 ignores the repossession branch entirely; p=1 the cure branch
	assert.Equal(t, 0.1, got[0])
	assert.Equal(t, 0.9, got[1])
}

func TestCombinerConvexityBound(t *testing.T) {
	t.Parallel()

	recs := make([]dataset.LoanRecord, 4)
	c := &Combiner{
		Prob: stubProb{0.0, 0.3, 0.7, 1.0},
		Repo: stubLoss{1.0, 1.0, 1.0, 1.0},
		Cure: stubLoss{0.0, 0.0, 0.0, 0.0},
	}

	got, err := c.Predict(recs)
	require.NoError(t, err)

	for _, v := range got {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCombinerPropagatesErrors(t *testing.T) {
	t.Parallel()

	c := &Combiner{
		Prob: failingProb{},
		Repo: stubLoss{},
		Cure: stubLoss{},
	}
	_, err := c.Predict(make([]dataset.LoanRecord, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestCombinerMissingDependent(t *testing.T) {
	t.Parallel()

	c := &Combiner{Prob: stubProb{}, Repo: stubLoss{}}
	_, err := c.Predict(nil)
	assert.Error(t, err)
}

func TestCombinerLengthMismatch(t *testing.T) {
	t.Parallel()

	c := &Combiner{
		Prob: stubProb{0.5},
		Repo: stubLoss{0.5, 0.5},
		Cure: stubLoss{0.5},
	}
	_, err := c.Predict(make([]dataset.LoanRecord, 1))
	assert.Error(t, err)
}
