// preprocess/encoder.go
package preprocess

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/quantyard/lgd/dataset"
)

// Encoder turns loan records into a feature matrix: numeric columns are
// standardized (mean/std learned at Fit time), categorical columns become
// one-hot indicator blocks. Categories not seen during Fit map to an
// all-zero block instead of failing.
//
// Each estimator owns its own Encoder; fitted state is frozen after Fit.
// Fields are exported so a fitted Encoder serializes with encoding/gob.
type Encoder struct {
	Numeric     []string
	Categorical []string

	Fitted     bool
	Mean, Std  []float64  // per numeric column
	Categories [][]string // per categorical column, sorted
}

// NewEncoder builds an unfitted encoder over the named columns.
func NewEncoder(numeric, categorical []string) *Encoder {
	return &Encoder{
		Numeric:     append([]string(nil), numeric...),
		Categorical: append([]string(nil), categorical...),
	}
}

// Fit learns scaling parameters and category alphabets from recs.
func (e *Encoder) Fit(recs []dataset.LoanRecord) error {
	if len(recs) == 0 {
		return fmt.Errorf("encoder: cannot fit on empty record set")
	}

	e.Mean = make([]float64, len(e.Numeric))
	e.Std = make([]float64, len(e.Numeric))
	for j, name := range e.Numeric {
		vals := make([]float64, len(recs))
		for i, r := range recs {
			v, err := r.Numeric(name)
			if err != nil {
				return err
			}
			vals[i] = v
		}
		mean, std := stat.MeanStdDev(vals, nil)
		if std == 0 || len(recs) == 1 {
			// constant column: scale by 1 so transform stays finite
			std = 1
		}
		e.Mean[j] = mean
		e.Std[j] = std
	}

	e.Categories = make([][]string, len(e.Categorical))
	for j, name := range e.Categorical {
		seen := map[string]bool{}
		for _, r := range recs {
			v, err := r.Categorical(name)
			if err != nil {
				return err
			}
			seen[v] = true
		}
		cats := make([]string, 0, len(seen))
		for v := range seen {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		e.Categories[j] = cats
	}

	e.Fitted = true
	return nil
}

// Width returns the number of output feature columns.
func (e *Encoder) Width() int {
	w := len(e.Numeric)
	for _, cats := range e.Categories {
		w += len(cats)
	}
	return w
}

// Transform encodes recs into a dense len(recs) x Width() matrix using the
// frozen fitted state.
func (e *Encoder) Transform(recs []dataset.LoanRecord) (*mat.Dense, error) {
	if !e.Fitted {
		return nil, fmt.Errorf("encoder: Transform called before Fit")
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("encoder: no records to transform")
	}

	X := mat.NewDense(len(recs), e.Width(), nil)
	for i, r := range recs {
		col := 0
		for j, name := range e.Numeric {
			v, err := r.Numeric(name)
			if err != nil {
				return nil, err
			}
			X.Set(i, col, (v-e.Mean[j])/e.Std[j])
			col++
		}
		for j, name := range e.Categorical {
			v, err := r.Categorical(name)
			if err != nil {
				return nil, err
			}
			for _, cat := range e.Categories[j] {
				if v == cat {
					X.Set(i, col, 1)
				}
				col++
			}
		}
	}
	return X, nil
}

// FitTransform fits on recs and returns their encoding.
func (e *Encoder) FitTransform(recs []dataset.LoanRecord) (*mat.Dense, error) {
	if err := e.Fit(recs); err != nil {
		return nil, err
	}
	return e.Transform(recs)
}
