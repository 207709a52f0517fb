// eval/metrics.go
package eval

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MSE returns the mean squared error between predictions and actuals.
func MSE(pred, actual []float64) (float64, error) {
	if len(pred) != len(actual) {
		return 0, fmt.Errorf("mse: %d predictions vs %d actuals", len(pred), len(actual))
	}
	if len(pred) == 0 {
		return 0, fmt.Errorf("mse: no observations")
	}

	diff := make([]float64, len(pred))
	copy(diff, pred)
	floats.Sub(diff, actual)
	floats.Mul(diff, diff)
	return stat.Mean(diff, nil), nil
}

// Calibration compares the mean predicted repossession probability with
// the observed repossession rate over the same records.
func Calibration(probs []float64, repossessed []bool) (meanPredicted, observedRate float64, err error) {
	if len(probs) != len(repossessed) {
		return 0, 0, fmt.Errorf("calibration: %d probabilities vs %d outcomes", len(probs), len(repossessed))
	}
	if len(probs) == 0 {
		return 0, 0, fmt.Errorf("calibration: no observations")
	}

	pos := 0
	for _, r := range repossessed {
		if r {
			pos++
		}
	}
	return stat.Mean(probs, nil), float64(pos) / float64(len(repossessed)), nil
}
