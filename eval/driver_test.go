package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantyard/lgd/estimator"
)

func testDriver() *Driver {
	d := NewDriver()
	// keep the forest small so the pipeline test stays fast
	d.Params = estimator.Params{Trees: 15, MaxDepth: 5, MinLeaf: 2}
	return d
}

func TestDriverEndToEnd(t *testing.T) {
	t.Parallel()

	d := testDriver()
	res, err := d.Run()
	require.NoError(t, err)

	assert.Equal(t, 1000, res.Records)
	assert.Equal(t, 800, res.Train)
	assert.Equal(t, 200, res.Test)
	assert.Equal(t, res.Train, res.TrainRepossessed+res.TrainCured)

	assert.GreaterOrEqual(t, res.MSE, 0.0)
	assert.GreaterOrEqual(t, res.TrainAccuracy, 0.0)
	assert.LessOrEqual(t, res.TrainAccuracy, 1.0)

	assert.Contains(t, res.Summary(), "Mean Squared Error (MSE):")
}

func TestDriverReproducible(t *testing.T) {
	t.Parallel()

	r1, err := testDriver().Run()
	require.NoError(t, err)
	r2, err := testDriver().Run()
	require.NoError(t, err)

	assert.Equal(t, r1.MSE, r2.MSE)
	assert.Equal(t, r1.TrainAccuracy, r2.TrainAccuracy)
	assert.Equal(t, r1.MeanPredictedProb, r2.MeanPredictedProb)
}

func TestDriverPersistsModels(t *testing.T) {
	t.Parallel()

	d := testDriver()
	d.Synth.Records = 300
	d.OutDir = t.TempDir()

	res, err := d.Run()
	require.NoError(t, err)
	require.Len(t, res.ModelPaths, 3)

	for _, p := range res.ModelPaths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	// persisted classifier must reload and predict
	_, err = estimator.LoadClassifier(filepath.Join(d.OutDir, "prob.gob"))
	require.NoError(t, err)
}

func TestDriverAbortsWithoutRepossessions(t *testing.T) {
	t.Parallel()

	d := testDriver()
	d.Synth.RepoProb = 0

	_, err := d.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repossessed loans")
}

func TestDriverAbortsWithoutCures(t *testing.T) {
	t.Parallel()

	d := testDriver()
	d.Synth.RepoProb = 1

	_, err := d.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cured loans")
}

func TestDriverBadSplit(t *testing.T) {
	t.Parallel()

	d := testDriver()
	d.TrainFrac = 1.5

	_, err := d.Run()
	assert.Error(t, err)
}
