package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the session schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id                  TEXT PRIMARY KEY,
		seed                INTEGER NOT NULL,
		generated_at        TEXT NOT NULL,
		catalog_fingerprint TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		snapshot_id     TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		department      TEXT NOT NULL CHECK(department IN ('Math','Science','History')),
		course_type     TEXT NOT NULL CHECK(course_type IN ('Required','Elective','Advanced')),
		deib_focus      TEXT NOT NULL CHECK(deib_focus IN ('Low','Medium','High')),
		deib_tag        TEXT NOT NULL DEFAULT '',
		homework_hours  REAL NOT NULL CHECK(homework_hours > 0),
		total_students  INTEGER NOT NULL,
		male            INTEGER NOT NULL,
		female          INTEGER NOT NULL,
		non_binary      INTEGER NOT NULL,
		male_fraction   REAL NOT NULL,
		male_pct        REAL NOT NULL,
		vocabulary      TEXT NOT NULL,
		comment_corpus  TEXT NOT NULL,
		adjusted        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (snapshot_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_position ON courses(snapshot_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_homework ON courses(snapshot_id, homework_hours)`,
}
