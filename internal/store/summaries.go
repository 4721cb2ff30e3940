package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertSummary stores a computed workout summary and returns its row ID
func (db *DB) InsertSummary(s *WorkoutSummary) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO workout_summaries (
			activity, recorded_at, duration_hours, distance_km, avg_speed_kmh, calories
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		s.Activity, s.RecordedAt.Format(time.RFC3339),
		s.DurationHours, s.DistanceKm, s.AvgSpeedKmh, s.Calories,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting summary: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("fetching insert id: %w", err)
	}
	s.ID = id
	return id, nil
}

// GetSummary retrieves a summary by ID
func (db *DB) GetSummary(id int64) (*WorkoutSummary, error) {
	row := db.QueryRow(`
		SELECT id, activity, recorded_at, duration_hours, distance_km, avg_speed_kmh, calories
		FROM workout_summaries
		WHERE id = ?
	`, id)

	s, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSummaryNotFound
	}
	return s, err
}

// ListSummaries returns summaries ordered by recording time descending
func (db *DB) ListSummaries(limit, offset int) ([]WorkoutSummary, error) {
	rows, err := db.Query(`
		SELECT id, activity, recorded_at, duration_hours, distance_km, avg_speed_kmh, calories
		FROM workout_summaries
		ORDER BY recorded_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []WorkoutSummary
	for rows.Next() {
		s, err := scanSummaryRows(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	return summaries, rows.Err()
}

// CountSummaries returns the total number of stored summaries
func (db *DB) CountSummaries() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM workout_summaries`).Scan(&count)
	return count, err
}

// ActivityTotals aggregates count, distance and calories per activity label
func (db *DB) ActivityTotals() ([]ActivityTotal, error) {
	rows, err := db.Query(`
		SELECT activity, COUNT(*), SUM(distance_km), SUM(calories)
		FROM workout_summaries
		GROUP BY activity
		ORDER BY activity
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []ActivityTotal
	for rows.Next() {
		var t ActivityTotal
		if err := rows.Scan(&t.Activity, &t.Count, &t.DistanceKm, &t.Calories); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CalorieSeries returns the calories of the n most recent summaries in
// chronological order, for charting
func (db *DB) CalorieSeries(n int) ([]float64, error) {
	rows, err := db.Query(`
		SELECT calories FROM (
			SELECT id, recorded_at, calories
			FROM workout_summaries
			ORDER BY recorded_at DESC, id DESC
			LIMIT ?
		)
		ORDER BY recorded_at ASC, id ASC
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []float64
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		series = append(series, c)
	}
	return series, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for the scan helpers
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSummary(row *sql.Row) (*WorkoutSummary, error) {
	return scanSummaryFrom(row)
}

func scanSummaryRows(rows *sql.Rows) (*WorkoutSummary, error) {
	return scanSummaryFrom(rows)
}

func scanSummaryFrom(sc scanner) (*WorkoutSummary, error) {
	var s WorkoutSummary
	var recordedAt string

	err := sc.Scan(&s.ID, &s.Activity, &recordedAt,
		&s.DurationHours, &s.DistanceKm, &s.AvgSpeedKmh, &s.Calories)
	if err != nil {
		return nil, err
	}

	s.RecordedAt, err = time.Parse(time.RFC3339, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", err)
	}
	return &s, nil
}
