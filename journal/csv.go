// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs *csv.Writer
	rf   *os.File
}

func NewCSV(runsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	if err := rw.Write([]string{
		"run_id", "time", "seed", "records", "train", "test",
		"split_frac", "trees", "max_depth", "mse", "train_accuracy", "observed_repo_rate",
	}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{runs: rw, rf: rf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Time.UTC().Format(time.RFC3339Nano),
		strconv.FormatInt(r.Seed, 10),
		strconv.Itoa(r.Records),
		strconv.Itoa(r.Train),
		strconv.Itoa(r.Test),
		f(r.SplitFrac),
		strconv.Itoa(r.Trees),
		strconv.Itoa(r.MaxDepth),
		f(r.MSE),
		f(r.TrainAccuracy),
		f(r.ObservedRepoRate),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		j.rf.Close()
		return err
	}
	return j.rf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
