package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per computed workout summary
		`CREATE TABLE IF NOT EXISTS workout_summaries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			activity TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			distance_km REAL NOT NULL,
			avg_speed_kmh REAL NOT NULL,
			calories REAL NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_summaries_recorded_at ON workout_summaries(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_activity ON workout_summaries(activity)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
