// Package report renders computed workout summaries as fixed-precision text.
package report

import (
	"fmt"

	"fittrack/internal/workout"
)

// Line renders one summary as a single report line. All four numeric fields
// use exactly three decimal places; the segment order is part of the output
// contract and must stay stable.
func Line(s workout.Summary) string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
		s.Activity, s.DurationHours, s.DistanceKm, s.MeanSpeedKmh, s.Calories,
	)
}
