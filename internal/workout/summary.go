package workout

// Summary is the immutable computed result of one workout: everything the
// report and the history store need, frozen at the moment of computation.
type Summary struct {
	Activity      string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmh  float64
	Calories      float64
}

// BuildSummary computes a Summary from a workout. It dispatches through the
// Workout interface so variant overrides (swimming's pool-based speed) apply.
// The computation is pure: calling it repeatedly on the same workout yields
// identical results.
func BuildSummary(w Workout) Summary {
	return Summary{
		Activity:      w.Label(),
		DurationHours: w.DurationHours(),
		DistanceKm:    w.DistanceKm(),
		MeanSpeedKmh:  w.MeanSpeedKmh(),
		Calories:      w.SpentCalories(),
	}
}
