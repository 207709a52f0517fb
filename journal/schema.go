// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	seed INTEGER NOT NULL,
	records INTEGER NOT NULL,
	train INTEGER NOT NULL,
	test INTEGER NOT NULL,
	split_frac REAL NOT NULL,
	trees INTEGER NOT NULL,
	max_depth INTEGER NOT NULL,
	mse REAL NOT NULL,
	train_accuracy REAL NOT NULL,
	observed_repo_rate REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_time ON runs(time);
`
