// dataset/record.go
package dataset

import (
	"fmt"
	"math"
)

// LoanRecord is one defaulted consumer loan with its observed workout outcome.
//
// Exactly one of LossRepo / LossCure is defined per record; the other is NaN.
// LGD always equals the defined one.
type LoanRecord struct {
	Year        int     // origination year
	Exposure    float64 // outstanding balance at default, account currency
	CreditScore int
	Collateral  string

	Repossessed bool
	LossRepo    float64 // loss fraction given repossession, NaN if cured
	LossCure    float64 // loss fraction given cure, NaN if repossessed
	LGD         float64
}

// Feature column names used by the estimators. Year is treated as ordinal
// and scaled with the other numerics; collateral is one-hot encoded.
var (
	NumericColumns     = []string{"year", "exposure", "credit_score"}
	CategoricalColumns = []string{"collateral"}
)

// Numeric returns the named numeric feature value.
func (r LoanRecord) Numeric(name string) (float64, error) {
	switch name {
	case "year":
		return float64(r.Year), nil
	case "exposure":
		return r.Exposure, nil
	case "credit_score":
		return float64(r.CreditScore), nil
	default:
		return 0, fmt.Errorf("unknown numeric feature %q", name)
	}
}

// Categorical returns the named categorical feature value.
func (r LoanRecord) Categorical(name string) (string, error) {
	switch name {
	case "collateral":
		return r.Collateral, nil
	default:
		return "", fmt.Errorf("unknown categorical feature %q", name)
	}
}

// Valid reports whether the record satisfies the outcome invariant:
// the loss matching the outcome is defined, the other is NaN, and LGD
// equals the defined one.
func (r LoanRecord) Valid() bool {
	if r.Repossessed {
		return !math.IsNaN(r.LossRepo) && math.IsNaN(r.LossCure) && r.LGD == r.LossRepo
	}
	return !math.IsNaN(r.LossCure) && math.IsNaN(r.LossRepo) && r.LGD == r.LossCure
}
