package store

import "time"

// WorkoutSummary is one stored workout computation result
type WorkoutSummary struct {
	ID            int64     `db:"id"`
	Activity      string    `db:"activity"`
	RecordedAt    time.Time `db:"recorded_at"`
	DurationHours float64   `db:"duration_hours"`
	DistanceKm    float64   `db:"distance_km"`
	AvgSpeedKmh   float64   `db:"avg_speed_kmh"`
	Calories      float64   `db:"calories"`
}

// ActivityTotal aggregates stored summaries for one activity label
type ActivityTotal struct {
	Activity   string  `db:"activity"`
	Count      int     `db:"count"`
	DistanceKm float64 `db:"distance_km"`
	Calories   float64 `db:"calories"`
}
