// journal/sqlite.go
package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, time, seed, records, train, test, split_frac, trees, max_depth, mse, train_accuracy, observed_repo_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Time.UTC().Format(time.RFC3339Nano), r.Seed, r.Records, r.Train, r.Test,
		r.SplitFrac, r.Trees, r.MaxDepth, r.MSE, r.TrainAccuracy, r.ObservedRepoRate,
	)
	return err
}

// ListRuns returns all recorded runs, newest first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, time, seed, records, train, test, split_frac, trees, max_depth, mse, train_accuracy, observed_repo_rate
		FROM runs ORDER BY time DESC, run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var ts string
		if err := rows.Scan(&r.RunID, &ts, &r.Seed, &r.Records, &r.Train, &r.Test,
			&r.SplitFrac, &r.Trees, &r.MaxDepth, &r.MSE, &r.TrainAccuracy, &r.ObservedRepoRate); err != nil {
			return nil, err
		}
		if r.Time, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
