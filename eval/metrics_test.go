package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pred     []float64
		actual   []float64
		expected float64
	}{
		{"perfect", []float64{0.1, 0.5, 0.9}, []float64{0.1, 0.5, 0.9}, 0},
		{"constant_offset", []float64{1, 1, 1}, []float64{0, 0, 0}, 1},
		{"mixed", []float64{0.5, 0.0}, []float64{0.0, 0.5}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.pred, tt.actual)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestMSEErrors(t *testing.T) {
	t.Parallel()

	_, err := MSE([]float64{1}, []float64{1, 2})
	assert.Error(t, err)

	_, err = MSE(nil, nil)
	assert.Error(t, err)
}

func TestCalibration(t *testing.T) {
	t.Parallel()

	meanPred, observed, err := Calibration(
		[]float64{0.2, 0.4, 0.6, 0.8},
		[]bool{false, true, false, true},
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, meanPred, 1e-12)
	assert.InDelta(t, 0.5, observed, 1e-12)
}

func TestCalibrationErrors(t *testing.T) {
	t.Parallel()

	_, _, err := Calibration([]float64{0.5}, nil)
	assert.Error(t, err)

	_, _, err = Calibration(nil, nil)
	assert.Error(t, err)
}
