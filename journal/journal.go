// journal/journal.go
package journal

import "time"

// RunRecord is one completed pipeline run: the inputs that determine it
// and the metrics it produced.
type RunRecord struct {
	RunID     string
	Time      time.Time
	Seed      int64
	Records   int
	Train     int
	Test      int
	SplitFrac float64
	Trees     int
	MaxDepth  int

	MSE              float64
	TrainAccuracy    float64
	ObservedRepoRate float64
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
