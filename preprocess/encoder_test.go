package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantyard/lgd/dataset"
)

func trainingRecords() []dataset.LoanRecord {
	return []dataset.LoanRecord{
		{Year: 2018, Exposure: 10_000, CreditScore: 600, Collateral: "car"},
		{Year: 2020, Exposure: 20_000, CreditScore: 700, Collateral: "truck"},
		{Year: 2022, Exposure: 30_000, CreditScore: 800, Collateral: "car"},
	}
}

func TestEncoderWidth(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(dataset.NumericColumns, dataset.CategoricalColumns)
	require.NoError(t, enc.Fit(trainingRecords()))

	// 3 numeric + 2 collateral categories seen in training
	assert.Equal(t, 5, enc.Width())
}

func TestEncoderStandardizes(t *testing.T) {
	t.Parallel()

	enc := NewEncoder([]string{"exposure"}, nil)
	X, err := enc.FitTransform(trainingRecords())
	require.NoError(t, err)

	rows, cols := X.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 1, cols)

	// mean of column is 0 after scaling
	sum := 0.0
	for i := 0; i < rows; i++ {
		sum += X.At(i, 0)
	}
	assert.InDelta(t, 0, sum/3, 1e-12)

	// scaling parameters come from training data only
	probe := []dataset.LoanRecord{{Exposure: 20_000}}
	Xp, err := enc.Transform(probe)
	require.NoError(t, err)
	assert.InDelta(t, 0, Xp.At(0, 0), 1e-12) // 20k is the training mean
}

func TestEncoderOneHot(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(nil, []string{"collateral"})
	require.NoError(t, enc.Fit(trainingRecords()))

	// categories sorted: car, truck
	X, err := enc.Transform([]dataset.LoanRecord{
		{Collateral: "car"},
		{Collateral: "truck"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, X.At(0, 0))
	assert.Equal(t, 0.0, X.At(0, 1))
	assert.Equal(t, 0.0, X.At(1, 0))
	assert.Equal(t, 1.0, X.At(1, 1))
}

func TestEncoderUnseenCategoryAllZero(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(nil, []string{"collateral"})
	require.NoError(t, enc.Fit(trainingRecords()))

	X, err := enc.Transform([]dataset.LoanRecord{{Collateral: "boat"}})
	require.NoError(t, err)

	_, cols := X.Dims()
	for j := 0; j < cols; j++ {
		assert.Equal(t, 0.0, X.At(0, j))
		assert.False(t, math.IsNaN(X.At(0, j)))
	}
}

func TestEncoderConstantColumn(t *testing.T) {
	t.Parallel()

	recs := []dataset.LoanRecord{
		{Year: 2020, Collateral: "car"},
		{Year: 2020, Collateral: "car"},
	}
	enc := NewEncoder([]string{"year"}, nil)
	X, err := enc.FitTransform(recs)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(X.At(0, 0)))
	assert.False(t, math.IsInf(X.At(0, 0), 0))
}

func TestEncoderErrors(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(dataset.NumericColumns, dataset.CategoricalColumns)

	err := enc.Fit(nil)
	assert.Error(t, err)

	_, err = enc.Transform(trainingRecords())
	assert.Error(t, err, "transform before fit")

	bad := NewEncoder([]string{"nope"}, nil)
	err = bad.Fit(trainingRecords())
	assert.Error(t, err)
}
