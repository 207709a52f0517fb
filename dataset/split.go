// dataset/split.go
package dataset

import (
	"fmt"
	"math/rand"
)

// Split shuffles a copy of recs with rng and cuts it at trainFrac.
// The input slice is not mutated.
func Split(recs []LoanRecord, trainFrac float64, rng *rand.Rand) (train, test []LoanRecord, err error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, fmt.Errorf("train fraction must be in (0,1), got %v", trainFrac)
	}

	shuffled := make([]LoanRecord, len(recs))
	copy(shuffled, recs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(float64(len(shuffled)) * trainFrac)
	return shuffled[:cut], shuffled[cut:], nil
}

// Partition separates records by workout outcome.
func Partition(recs []LoanRecord) (repossessed, cured []LoanRecord) {
	for _, r := range recs {
		if r.Repossessed {
			repossessed = append(repossessed, r)
		} else {
			cured = append(cured, r)
		}
	}
	return repossessed, cured
}
