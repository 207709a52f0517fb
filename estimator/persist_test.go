package estimator

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantyard/lgd/dataset"
)

func TestClassifierSaveLoad(t *testing.T) {
	t.Parallel()

	recs := synthRecords(t, 300, 42)
	c := NewClassifier(smallParams())
	require.NoError(t, c.Fit(recs, rand.New(rand.NewSource(5))))

	want, err := c.PredictProba(recs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "prob.gob")
	require.NoError(t, c.Save(path))

	loaded, err := LoadClassifier(path)
	require.NoError(t, err)

	got, err := loaded.PredictProba(recs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRegressorSaveLoad(t *testing.T) {
	t.Parallel()

	recs := synthRecords(t, 300, 42)
	repo, _ := dataset.Partition(recs)

	g := NewRegressor(smallParams())
	require.NoError(t, g.Fit(repo, LossGivenRepossession, rand.New(rand.NewSource(5))))

	want, err := g.Predict(recs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "repo.gob")
	require.NoError(t, g.Save(path))

	loaded, err := LoadRegressor(path)
	require.NoError(t, err)

	got, err := loaded.Predict(recs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadClassifier(filepath.Join(t.TempDir(), "nope.gob"))
	assert.Error(t, err)
}
