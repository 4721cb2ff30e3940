package service

import (
	"errors"
	"math"
	"testing"

	"fittrack/internal/sensor"
	"fittrack/internal/store"
	"fittrack/internal/workout"
)

func testServices(t *testing.T) (*IngestService, *QueryService) {
	t.Helper()
	db, err := store.OpenTest()
	if err != nil {
		t.Fatalf("OpenTest: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewIngestService(db), NewQueryService(db)
}

func TestProcessPacket(t *testing.T) {
	ingest, query := testServices(t)

	summary, err := ingest.ProcessPacket(sensor.Packet{Tag: "SWM", Values: []float64{720, 1, 80, 25, 40}})
	if err != nil {
		t.Fatalf("ProcessPacket: %v", err)
	}

	if summary.Activity != workout.LabelSwimming {
		t.Errorf("Activity = %q, want Swimming", summary.Activity)
	}
	if math.Abs(summary.Calories-336) > 1e-9 {
		t.Errorf("Calories = %v, want 336", summary.Calories)
	}

	// The summary must land in the store
	page, total, err := query.HistoryPage(10, 0)
	if err != nil {
		t.Fatalf("HistoryPage: %v", err)
	}
	if total != 1 || len(page) != 1 {
		t.Fatalf("total = %d, page len = %d, want 1 and 1", total, len(page))
	}
	if page[0].Activity != workout.LabelSwimming {
		t.Errorf("stored Activity = %q, want Swimming", page[0].Activity)
	}
	if math.Abs(page[0].AvgSpeedKmh-1.0) > 1e-9 {
		t.Errorf("stored AvgSpeedKmh = %v, want 1.0", page[0].AvgSpeedKmh)
	}
}

func TestProcessPacketErrors(t *testing.T) {
	ingest, query := testServices(t)

	tests := []struct {
		name    string
		packet  sensor.Packet
		wantErr error
	}{
		{"unknown tag", sensor.Packet{Tag: "XYZ", Values: []float64{1, 1, 1}}, sensor.ErrUnknownActivity},
		{"invalid measurement", sensor.Packet{Tag: "RUN", Values: []float64{15000, 0, 75}}, workout.ErrInvalidMeasurement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingest.ProcessPacket(tt.packet)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Nothing may be stored on failure
	_, total, err := query.HistoryPage(10, 0)
	if err != nil {
		t.Fatalf("HistoryPage: %v", err)
	}
	if total != 0 {
		t.Errorf("store has %d summaries after failed packets, want 0", total)
	}
}

func TestProcessBatchIsolation(t *testing.T) {
	ingest, _ := testServices(t)

	packets := []sensor.Packet{
		{Tag: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Tag: "XYZ", Values: []float64{1, 2, 3}},
		{Tag: "RUN", Values: []float64{15000, 1, 75}},
		{Tag: "WLK", Values: []float64{9000, -1, 75, 180}},
		{Tag: "WLK", Values: []float64{9000, 1, 75, 180}},
	}

	result := ingest.ProcessBatch(packets, nil)

	if result.Processed != 5 {
		t.Errorf("Processed = %d, want 5", result.Processed)
	}
	if result.Stored != 3 {
		t.Errorf("Stored = %d, want 3", result.Stored)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(result.Errors))
	}
	if !errors.Is(result.Errors[0], sensor.ErrUnknownActivity) {
		t.Errorf("first error = %v, want ErrUnknownActivity", result.Errors[0])
	}
	if !errors.Is(result.Errors[1], workout.ErrInvalidMeasurement) {
		t.Errorf("second error = %v, want ErrInvalidMeasurement", result.Errors[1])
	}

	labels := make([]string, len(result.Summaries))
	for i, s := range result.Summaries {
		labels[i] = s.Activity
	}
	want := []string{workout.LabelSwimming, workout.LabelRunning, workout.LabelSportsWalking}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("summary %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestProcessBatchProgress(t *testing.T) {
	ingest, _ := testServices(t)

	packets := []sensor.Packet{
		{Tag: "RUN", Values: []float64{15000, 1, 75}},
		{Tag: "XYZ", Values: nil},
	}

	progress := make(chan IngestProgress, len(packets))
	ingest.ProcessBatch(packets, progress)

	var updates []IngestProgress
	for p := range progress {
		updates = append(updates, p)
	}

	if len(updates) != 2 {
		t.Fatalf("got %d progress updates, want 2", len(updates))
	}
	if updates[0].Completed != 1 || updates[0].Error != nil {
		t.Errorf("first update = %+v, want completed 1 without error", updates[0])
	}
	if updates[1].Completed != 2 || updates[1].Error == nil {
		t.Errorf("second update = %+v, want completed 2 with error", updates[1])
	}
}

func TestGetDashboardData(t *testing.T) {
	ingest, query := testServices(t)

	packets := []sensor.Packet{
		{Tag: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Tag: "RUN", Values: []float64{15000, 1, 75}},
		{Tag: "RUN", Values: []float64{10000, 0.5, 75}},
	}
	if result := ingest.ProcessBatch(packets, nil); len(result.Errors) != 0 {
		t.Fatalf("batch errors: %v", result.Errors)
	}

	data, err := query.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData: %v", err)
	}

	if data.TotalWorkouts != 3 {
		t.Errorf("TotalWorkouts = %d, want 3", data.TotalWorkouts)
	}
	if len(data.Totals) != 2 {
		t.Fatalf("got %d activity totals, want 2", len(data.Totals))
	}
	if data.Totals[0].Activity != workout.LabelRunning || data.Totals[0].Count != 2 {
		t.Errorf("first total = %+v, want Running with count 2", data.Totals[0])
	}
	if len(data.Recent) != 3 {
		t.Errorf("got %d recent summaries, want 3", len(data.Recent))
	}
	if len(data.CalorieTrend) != 3 {
		t.Errorf("got %d trend points, want 3", len(data.CalorieTrend))
	}
}
