package service

import (
	"fmt"
	"time"

	"fittrack/internal/sensor"
	"fittrack/internal/store"
	"fittrack/internal/workout"
)

// IngestService turns raw sensor packets into stored workout summaries
type IngestService struct {
	store *store.DB
	now   func() time.Time
}

// NewIngestService creates a new ingest service
func NewIngestService(db *store.DB) *IngestService {
	return &IngestService{store: db, now: time.Now}
}

// IngestProgress reports progress during a batch ingest
type IngestProgress struct {
	Total     int
	Completed int
	Current   string // tag of the packet being processed
	Error     error
}

// IngestResult contains the results of a batch ingest
type IngestResult struct {
	Processed int
	Stored    int
	Summaries []workout.Summary
	Errors    []error
}

// ProcessPacket resolves one packet, computes its summary and stores it.
// The returned summary carries the computed values; the stored row ID is
// discarded because callers only render and aggregate.
func (s *IngestService) ProcessPacket(p sensor.Packet) (workout.Summary, error) {
	w, err := sensor.Resolve(p)
	if err != nil {
		return workout.Summary{}, fmt.Errorf("resolving packet: %w", err)
	}

	summary := workout.BuildSummary(w)

	_, err = s.store.InsertSummary(&store.WorkoutSummary{
		Activity:      summary.Activity,
		RecordedAt:    s.now(),
		DurationHours: summary.DurationHours,
		DistanceKm:    summary.DistanceKm,
		AvgSpeedKmh:   summary.MeanSpeedKmh,
		Calories:      summary.Calories,
	})
	if err != nil {
		return workout.Summary{}, fmt.Errorf("storing summary: %w", err)
	}

	return summary, nil
}

// ProcessBatch runs every packet through the pipeline. Each packet is
// isolated: a bad packet is recorded in Errors and the rest of the batch
// proceeds unaffected.
func (s *IngestService) ProcessBatch(packets []sensor.Packet, progress chan<- IngestProgress) *IngestResult {
	if progress != nil {
		defer close(progress)
	}

	result := &IngestResult{}
	for i, p := range packets {
		result.Processed++

		summary, err := s.ProcessPacket(p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("packet %d (%s): %w", i+1, p.Tag, err))
		} else {
			result.Stored++
			result.Summaries = append(result.Summaries, summary)
		}

		if progress != nil {
			progress <- IngestProgress{
				Total:     len(packets),
				Completed: i + 1,
				Current:   p.Tag,
				Error:     err,
			}
		}
	}
	return result
}
