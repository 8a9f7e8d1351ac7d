package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS report_runs (
		id            TEXT PRIMARY KEY,
		config_key    TEXT NOT NULL,
		output_path   TEXT NOT NULL,
		project_count INTEGER NOT NULL DEFAULT 0 CHECK(project_count >= 0),
		sheet_count   INTEGER NOT NULL DEFAULT 0 CHECK(sheet_count >= 0),
		total_hours   REAL NOT NULL DEFAULT 0 CHECK(total_hours >= 0),
		created_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS report_run_projects (
		run_id      TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		source_file TEXT NOT NULL,
		hours       REAL NOT NULL DEFAULT 0,
		weeks       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, position)
	)`,
	`ALTER TABLE report_run_projects ADD COLUMN dropped INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_report_runs_created ON report_runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_report_runs_config ON report_runs(config_key)`,
}
