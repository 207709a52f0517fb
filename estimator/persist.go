// estimator/persist.go
package estimator

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Fitted estimators persist as gob: the frozen Encoder state plus the
// grown trees. The format is Go-native and reloadable only by this
// implementation, which is all the pipeline needs.

// Save writes the fitted classifier to path.
func (c *Classifier) Save(path string) error {
	return saveGob(path, c)
}

// LoadClassifier reads a classifier previously written by Save.
func LoadClassifier(path string) (*Classifier, error) {
	var c Classifier
	if err := loadGob(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the fitted regressor to path.
func (g *Regressor) Save(path string) error {
	return saveGob(path, g)
}

// LoadRegressor reads a regressor previously written by Save.
func LoadRegressor(path string) (*Regressor, error) {
	var g Regressor
	if err := loadGob(path, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func saveGob(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return f.Close()
}

func loadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode model: %w", err)
	}
	return nil
}
